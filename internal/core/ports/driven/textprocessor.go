package driven

import (
	"context"

	"github.com/ceplan/fichas/internal/core/domain"
)

// TextProcessor transforms raw ficha text into hyperlinked content.
type TextProcessor interface {
	// Name returns the processor name for logging.
	Name() string

	// Process runs the text/reference pipeline on one input.
	// Malformed lines degrade the output; they never return an error.
	Process(ctx context.Context, input *domain.FichaInput) (*domain.ProcessedContent, error)
}
