package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ceplan/fichas/internal/core/domain"
	"github.com/ceplan/fichas/internal/core/ports/driven"
)

// Ensure ResultStore implements the interface.
var _ driven.ResultStore = (*ResultStore)(nil)

// ResultStore is an in-memory implementation of driven.ResultStore.
type ResultStore struct {
	mu     sync.RWMutex
	fichas map[string]domain.ProcessedFicha
}

// NewResultStore creates a new in-memory result store.
func NewResultStore() *ResultStore {
	return &ResultStore{
		fichas: make(map[string]domain.ProcessedFicha),
	}
}

// Save stores or replaces the result for a ficha code.
func (s *ResultStore) Save(_ context.Context, ficha *domain.ProcessedFicha) error {
	if ficha == nil || ficha.Code == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fichas[ficha.Code] = *ficha
	return nil
}

// Get retrieves the result for a ficha code.
func (s *ResultStore) Get(_ context.Context, code string) (*domain.ProcessedFicha, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ficha, ok := s.fichas[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ficha, nil
}

// List returns all results ordered by code.
func (s *ResultStore) List(_ context.Context) ([]domain.ProcessedFicha, error) {
	return s.filter(func(domain.ProcessedFicha) bool { return true }), nil
}

// ListByRun returns the results of one run ordered by code.
func (s *ResultStore) ListByRun(_ context.Context, runID string) ([]domain.ProcessedFicha, error) {
	return s.filter(func(f domain.ProcessedFicha) bool { return f.RunID == runID }), nil
}

// Delete removes the result for a ficha code.
func (s *ResultStore) Delete(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.fichas[code]; !ok {
		return domain.ErrNotFound
	}
	delete(s.fichas, code)
	return nil
}

func (s *ResultStore) filter(keep func(domain.ProcessedFicha) bool) []domain.ProcessedFicha {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ProcessedFicha, 0, len(s.fichas))
	for _, f := range s.fichas {
		if keep(f) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
