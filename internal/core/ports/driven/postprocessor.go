package driven

import (
	"context"

	"github.com/ceplan/fichas/internal/core/domain"
)

// PostProcessor inspects or annotates a processed ficha.
// PostProcessors are chained in a pipeline (e.g., link audit).
type PostProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process examines the ficha and may update its derived fields.
	Process(ctx context.Context, ficha *domain.ProcessedFicha) error
}

// PostProcessorPipeline chains multiple PostProcessors.
type PostProcessorPipeline interface {
	// Process runs the ficha through all processors in order.
	Process(ctx context.Context, ficha *domain.ProcessedFicha) error
}
