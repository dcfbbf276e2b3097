package driven

import (
	"context"

	"github.com/ceplan/fichas/internal/core/domain"
)

// ResultStore persists processed fichas. It keeps the latest result per
// ficha code: saving a code that already exists replaces it.
type ResultStore interface {
	// Save stores or replaces the result for ficha.Code.
	Save(ctx context.Context, ficha *domain.ProcessedFicha) error

	// Get retrieves the result for a ficha code.
	// Returns domain.ErrNotFound if the code has never been processed.
	Get(ctx context.Context, code string) (*domain.ProcessedFicha, error)

	// List returns all results ordered by code.
	List(ctx context.Context) ([]domain.ProcessedFicha, error)

	// ListByRun returns the results produced by one run, ordered by code.
	ListByRun(ctx context.Context, runID string) ([]domain.ProcessedFicha, error)

	// Delete removes the result for a ficha code.
	Delete(ctx context.Context, code string) error
}
