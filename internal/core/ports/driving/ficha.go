package driving

import (
	"context"

	"github.com/ceplan/fichas/internal/core/domain"
)

// FichaService processes ficha text and manages the stored results.
type FichaService interface {
	// Process runs the text/reference pipeline on one input, audits the
	// links, classifies the code and stores the result.
	Process(ctx context.Context, input domain.FichaInput) (*domain.ProcessedFicha, error)

	// ProcessBatch processes several inputs concurrently. It returns one
	// item per input, in input order; a failed item does not stop the batch.
	ProcessBatch(ctx context.Context, inputs []domain.FichaInput) []domain.BatchItem

	// Publish sends a stored result to the platform writer.
	Publish(ctx context.Context, code string) error

	// Get retrieves the stored result for a ficha code.
	Get(ctx context.Context, code string) (*domain.ProcessedFicha, error)

	// List returns all stored results.
	List(ctx context.Context) ([]domain.ProcessedFicha, error)

	// Delete removes the stored result for a ficha code.
	Delete(ctx context.Context, code string) error
}
