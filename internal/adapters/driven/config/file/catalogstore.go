package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/ceplan/fichas/internal/core/domain"
	"github.com/ceplan/fichas/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// catalogHeader is written above the default catalog on first use.
const catalogHeader = `# Ficha catalog.
#
# Rubros are tried in file order and, inside a rubro, subrubros in file
# order. The first pattern that matches the start of a ficha code wins.
# Patterns use Go regular expression syntax.
#
# [topics] maps the platform's numeric topic code to its label.

`

// CatalogStore loads the rubro catalog from a user-editable TOML file.
// The file is created with the built-in catalog the first time Load runs,
// not in the constructor.
type CatalogStore struct {
	path     string
	initOnce sync.Once
	initErr  error
}

// NewCatalogStore creates a file-based catalog store.
// If path is empty, defaults to ~/.fichas/catalog.toml.
func NewCatalogStore(path string) (*CatalogStore, error) {
	if path == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		path = filepath.Join(dir, "catalog.toml")
	}
	return &CatalogStore{path: path}, nil
}

// Load reads the catalog file. Missing sections take the built-in values:
// a file with only [topics] still classifies with the default rubros.
// If the default file cannot be created, the built-in catalog is returned.
func (s *CatalogStore) Load() (domain.Catalog, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		return domain.DefaultCatalog(), nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}

	var catalog domain.Catalog
	if err := toml.Unmarshal(data, &catalog); err != nil {
		return domain.Catalog{}, fmt.Errorf("%w: parse catalog %s: %v", domain.ErrInvalidInput, s.path, err)
	}

	defaults := domain.DefaultCatalog()
	if len(catalog.Rubros) == 0 {
		catalog.Rubros = defaults.Rubros
	}
	if len(catalog.Topics) == 0 {
		catalog.Topics = defaults.Topics
	}

	if err := validateCatalog(catalog); err != nil {
		return domain.Catalog{}, fmt.Errorf("catalog %s: %w", s.path, err)
	}
	return catalog, nil
}

// Path returns the catalog file path.
func (s *CatalogStore) Path() string {
	return s.path
}

// initialise writes the built-in catalog unless the file already exists.
func (s *CatalogStore) initialise() {
	if _, err := os.Stat(s.path); err == nil {
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		s.initErr = fmt.Errorf("create catalog directory: %w", err)
		return
	}

	data, err := toml.Marshal(domain.DefaultCatalog())
	if err != nil {
		s.initErr = fmt.Errorf("encode default catalog: %w", err)
		return
	}

	if err := os.WriteFile(s.path, append([]byte(catalogHeader), data...), 0600); err != nil {
		s.initErr = fmt.Errorf("create default catalog: %w", err)
	}
}

func validateCatalog(c domain.Catalog) error {
	for i, r := range c.Rubros {
		if r.Name == "" {
			return fmt.Errorf("%w: rubro %d has no name", domain.ErrInvalidInput, i+1)
		}
		if len(r.Subrubros) == 0 {
			return fmt.Errorf("%w: rubro %q has no subrubro", domain.ErrInvalidInput, r.Name)
		}
		for _, sub := range r.Subrubros {
			if sub.Name == "" || sub.Pattern == "" {
				return fmt.Errorf("%w: rubro %q has a subrubro without name or pattern", domain.ErrInvalidInput, r.Name)
			}
		}
	}
	return nil
}
