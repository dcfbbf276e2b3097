package ficha

import (
	"context"

	"github.com/ceplan/fichas/internal/core/domain"
	"github.com/ceplan/fichas/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.TextProcessor = (*Normaliser)(nil)

// Normaliser adapts Processor to the driven.TextProcessor port.
type Normaliser struct{}

// NewNormaliser creates a new ficha normaliser.
func NewNormaliser() *Normaliser {
	return &Normaliser{}
}

// Name returns the processor name for logging.
func (n *Normaliser) Name() string {
	return "ficha"
}

// Process runs the text/reference pipeline on one ficha input.
// Malformed text never produces an error; only a nil input or a
// cancelled context does.
func (n *Normaliser) Process(ctx context.Context, input *domain.FichaInput) (*domain.ProcessedContent, error) {
	if input == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return New(input.ArticleText, input.ReferenceText).Result(), nil
}
