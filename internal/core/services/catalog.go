package services

import (
	"fmt"
	"regexp"

	"github.com/ceplan/fichas/internal/core/domain"
	"github.com/ceplan/fichas/internal/core/ports/driving"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// compiledSubrubro is a subrubro with its pattern compiled.
type compiledSubrubro struct {
	rubro    string
	subrubro string
	pattern  *regexp.Regexp
}

// CatalogService classifies ficha codes against an immutable catalog.
type CatalogService struct {
	catalog  domain.Catalog
	patterns []compiledSubrubro
}

// NewCatalogService compiles every pattern of the catalog once.
// An invalid pattern is reported as domain.ErrInvalidInput.
func NewCatalogService(catalog domain.Catalog) (*CatalogService, error) {
	s := &CatalogService{catalog: catalog}

	for _, r := range catalog.Rubros {
		for _, sub := range r.Subrubros {
			re, err := compileAnchored(sub.Pattern)
			if err != nil {
				return nil, fmt.Errorf("%w: subrubro %q pattern %q: %v", domain.ErrInvalidInput, sub.Name, sub.Pattern, err)
			}
			s.patterns = append(s.patterns, compiledSubrubro{
				rubro:    r.Name,
				subrubro: sub.Name,
				pattern:  re,
			})
		}
	}

	return s, nil
}

// compileAnchored compiles pattern so that it only matches at the start of
// the code, whether or not the pattern carries its own ^.
func compileAnchored(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`^(?:` + pattern + `)`)
}

// Classify returns the first rubro/subrubro whose pattern matches code.
func (s *CatalogService) Classify(code string) (domain.Classification, error) {
	for _, p := range s.patterns {
		if p.pattern.MatchString(code) {
			return domain.Classification{Rubro: p.rubro, Subrubro: p.subrubro}, nil
		}
	}
	return domain.Classification{}, fmt.Errorf("%w: %s", domain.ErrUnclassified, code)
}

// Topic returns the label for a topic code.
func (s *CatalogService) Topic(code string) string {
	return s.catalog.Topics.Label(code)
}

// Rubros returns the catalog in match order.
func (s *CatalogService) Rubros() []domain.Rubro {
	out := make([]domain.Rubro, len(s.catalog.Rubros))
	copy(out, s.catalog.Rubros)
	return out
}
