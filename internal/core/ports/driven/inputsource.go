package driven

import (
	"context"

	"github.com/ceplan/fichas/internal/core/domain"
)

// InputSource provides raw ficha inputs, e.g. from text files on disk.
type InputSource interface {
	// List returns every complete ficha input, ordered by code.
	List(ctx context.Context) ([]domain.FichaInput, error)

	// Get returns the input for one ficha code.
	// Returns domain.ErrNotFound or domain.ErrIncompleteInput.
	Get(ctx context.Context, code string) (*domain.FichaInput, error)

	// Watch emits a change each time a ficha's input files change.
	// The channel is closed when ctx is cancelled or the source is closed.
	Watch(ctx context.Context) (<-chan domain.InputChange, error)

	// Close releases watch resources.
	Close() error
}
