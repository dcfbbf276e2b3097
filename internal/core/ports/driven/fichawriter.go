package driven

import (
	"context"
	"time"

	"github.com/ceplan/fichas/internal/core/domain"
)

// FichaWriter pushes processed content into the observatory platform.
// Implementations drive the platform's edit forms; the core only decides
// what goes into each form.
type FichaWriter interface {
	// UpdateSummary replaces the ficha summary and its last-updated date.
	UpdateSummary(ctx context.Context, code, summary string, updated time.Time) error

	// UpdateText replaces the ficha text block.
	UpdateText(ctx context.Context, code, body string) error

	// UpdateCharts disables the existing chart rows and creates one row per entry.
	UpdateCharts(ctx context.Context, code string, charts []domain.ChartEntry) error

	// UpdateReferences disables the existing references and adds the clean list.
	UpdateReferences(ctx context.Context, code, references string) error
}
