package driven

import "github.com/ceplan/fichas/internal/core/domain"

// CatalogStore loads the rubro/subrubro catalog and topic map.
type CatalogStore interface {
	// Load reads the catalog. The returned value is treated as immutable.
	Load() (domain.Catalog, error)

	// Path returns the catalog location for display.
	Path() string
}
