package driving

import "github.com/ceplan/fichas/internal/core/domain"

// CatalogService classifies ficha codes against the rubro catalog.
type CatalogService interface {
	// Classify returns the first rubro/subrubro whose pattern matches code.
	// Returns domain.ErrUnclassified when none does.
	Classify(code string) (domain.Classification, error)

	// Topic returns the label for a topic code.
	Topic(code string) string

	// Rubros returns the catalog in match order.
	Rubros() []domain.Rubro
}
