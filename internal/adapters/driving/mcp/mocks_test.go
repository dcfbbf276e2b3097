package mcp

import (
	"context"

	"github.com/ceplan/fichas/internal/core/domain"
)

// mockFichaService is a mock implementation of driving.FichaService.
type mockFichaService struct {
	fichas    map[string]*domain.ProcessedFicha
	processed []domain.FichaInput
	err       error
}

func newMockFichaService(fichas ...*domain.ProcessedFicha) *mockFichaService {
	m := &mockFichaService{fichas: make(map[string]*domain.ProcessedFicha)}
	for _, f := range fichas {
		m.fichas[f.Code] = f
	}
	return m
}

func (m *mockFichaService) Process(_ context.Context, input domain.FichaInput) (*domain.ProcessedFicha, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.processed = append(m.processed, input)
	f := &domain.ProcessedFicha{
		Code:  input.Code,
		Input: input,
		Content: domain.ProcessedContent{
			CleanText:       input.ArticleText,
			CleanReferences: input.ReferenceText,
		},
	}
	m.fichas[input.Code] = f
	return f, nil
}

func (m *mockFichaService) ProcessBatch(ctx context.Context, inputs []domain.FichaInput) []domain.BatchItem {
	items := make([]domain.BatchItem, len(inputs))
	for i, in := range inputs {
		f, err := m.Process(ctx, in)
		items[i] = domain.BatchItem{Code: in.Code, Result: f, Err: err}
	}
	return items
}

func (m *mockFichaService) Publish(_ context.Context, _ string) error {
	return m.err
}

func (m *mockFichaService) Get(_ context.Context, code string) (*domain.ProcessedFicha, error) {
	if m.err != nil {
		return nil, m.err
	}
	f, ok := m.fichas[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return f, nil
}

func (m *mockFichaService) List(_ context.Context) ([]domain.ProcessedFicha, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.ProcessedFicha, 0, len(m.fichas))
	for _, f := range m.fichas {
		out = append(out, *f)
	}
	return out, nil
}

func (m *mockFichaService) Delete(_ context.Context, code string) error {
	if _, ok := m.fichas[code]; !ok {
		return domain.ErrNotFound
	}
	delete(m.fichas, code)
	return nil
}

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	classes map[string]domain.Classification
	err     error
}

func (m *mockCatalogService) Classify(code string) (domain.Classification, error) {
	if m.err != nil {
		return domain.Classification{}, m.err
	}
	c, ok := m.classes[code]
	if !ok {
		return domain.Classification{}, domain.ErrUnclassified
	}
	return c, nil
}

func (m *mockCatalogService) Topic(code string) string {
	return domain.DefaultTopics().Label(code)
}

func (m *mockCatalogService) Rubros() []domain.Rubro {
	return domain.DefaultCatalog().Rubros
}
