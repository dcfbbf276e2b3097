package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ceplan/fichas/internal/core/domain"
	"github.com/ceplan/fichas/internal/core/ports/driven"
	"github.com/ceplan/fichas/internal/core/ports/driving"
	"github.com/ceplan/fichas/internal/logger"
)

// Ensure FichaService implements the interface.
var _ driving.FichaService = (*FichaService)(nil)

// FichaService processes ficha text and manages stored results.
// One service instance corresponds to one run: every result it produces
// carries the same RunID.
type FichaService struct {
	processor driven.TextProcessor
	store     driven.ResultStore
	pipeline  driven.PostProcessorPipeline
	catalog   driving.CatalogService
	writer    driven.FichaWriter
	workers   int
	runID     string
	now       func() time.Time
}

// NewFichaService creates a new ficha service.
// The store, pipeline, catalog and writer may be nil.
func NewFichaService(
	processor driven.TextProcessor,
	store driven.ResultStore,
	pipeline driven.PostProcessorPipeline,
	catalog driving.CatalogService,
	writer driven.FichaWriter,
	workers int,
) *FichaService {
	if workers <= 0 {
		workers = domain.DefaultWorkers
	}
	return &FichaService{
		processor: processor,
		store:     store,
		pipeline:  pipeline,
		catalog:   catalog,
		writer:    writer,
		workers:   workers,
		runID:     uuid.New().String(),
		now:       time.Now,
	}
}

// RunID returns the identifier stamped on every result of this service.
func (s *FichaService) RunID() string {
	return s.runID
}

// Process runs the text/reference pipeline on one input, audits the
// links, classifies the code and stores the result.
func (s *FichaService) Process(ctx context.Context, input domain.FichaInput) (*domain.ProcessedFicha, error) {
	if s.processor == nil {
		return nil, domain.ErrNotImplemented
	}
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("ficha %q: %w", input.Code, err)
	}

	log := logger.Ficha(input.Code)
	logger.Section("Ficha " + input.Code)
	log.Debug("processor: %s", s.processor.Name())
	log.Debug("article: %d bytes, references: %d bytes", len(input.ArticleText), len(input.ReferenceText))

	content, err := s.processor.Process(ctx, &input)
	if err != nil {
		return nil, fmt.Errorf("processing ficha %s: %w", input.Code, err)
	}

	ficha := &domain.ProcessedFicha{
		ID:          uuid.New().String(),
		Code:        input.Code,
		RunID:       s.runID,
		Input:       input,
		Content:     *content,
		ProcessedAt: s.now().UTC(),
	}
	log.Debug("references indexed: %d, removed lines: %d, charts: %d",
		len(content.Index), len(content.Removed), len(content.Charts))

	s.classify(ficha, log)

	if s.pipeline != nil {
		if err := s.pipeline.Process(ctx, ficha); err != nil {
			return nil, fmt.Errorf("post-processing ficha %s: %w", input.Code, err)
		}
		if !ficha.Audit.Complete() {
			log.Warn("citations without URL: %v", ficha.Audit.Unresolved)
		}
	}

	if s.store != nil {
		if err := s.store.Save(ctx, ficha); err != nil {
			return nil, fmt.Errorf("saving ficha %s: %w", input.Code, err)
		}
	}

	log.Info("processed (%d links, %d charts)", ficha.Audit.LinkCount, len(content.Charts))
	return ficha, nil
}

// classify records the catalog classification. An unknown code is not an
// error for processing; it only leaves the classification empty.
func (s *FichaService) classify(ficha *domain.ProcessedFicha, log logger.Scoped) {
	if s.catalog == nil {
		return
	}
	c, err := s.catalog.Classify(ficha.Code)
	if err != nil {
		log.Warn("%v", err)
		return
	}
	ficha.Classification = c
	log.Debug("classification: %s", c)
}

// ProcessBatch processes inputs concurrently, at most s.workers at a time.
// Items are returned in input order.
func (s *FichaService) ProcessBatch(ctx context.Context, inputs []domain.FichaInput) []domain.BatchItem {
	items := make([]domain.BatchItem, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := range inputs {
		items[i].Code = inputs[i].Code
		g.Go(func() error {
			result, err := s.Process(gctx, inputs[i])
			items[i].Result = result
			items[i].Err = err
			// Per-item failures are reported in items, never to the group.
			return nil
		})
	}
	_ = g.Wait()

	return items
}

// Publish sends a stored result to the platform writer: the summary first,
// then the text body, the charts and finally the references.
func (s *FichaService) Publish(ctx context.Context, code string) error {
	if s.writer == nil {
		return domain.ErrWriterUnavailable
	}

	ficha, err := s.Get(ctx, code)
	if err != nil {
		return err
	}

	logger.Section("Publish " + code)
	content := &ficha.Content

	if err := s.writer.UpdateSummary(ctx, code, content.Summary(), s.now()); err != nil {
		return fmt.Errorf("updating summary of %s: %w", code, err)
	}
	if err := s.writer.UpdateText(ctx, code, content.Body()); err != nil {
		return fmt.Errorf("updating text of %s: %w", code, err)
	}
	if err := s.writer.UpdateCharts(ctx, code, content.Charts); err != nil {
		return fmt.Errorf("updating charts of %s: %w", code, err)
	}
	if err := s.writer.UpdateReferences(ctx, code, content.CleanReferences); err != nil {
		return fmt.Errorf("updating references of %s: %w", code, err)
	}

	logger.Ficha(code).Info("published")
	return nil
}

// Get retrieves the stored result for a ficha code.
func (s *FichaService) Get(ctx context.Context, code string) (*domain.ProcessedFicha, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Get(ctx, code)
}

// List returns all stored results ordered by code.
func (s *FichaService) List(ctx context.Context) ([]domain.ProcessedFicha, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	fichas, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(fichas, func(i, j int) bool {
		return fichas[i].Code < fichas[j].Code
	})
	return fichas, nil
}

// Delete removes the stored result for a ficha code.
func (s *FichaService) Delete(ctx context.Context, code string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	return s.store.Delete(ctx, code)
}
