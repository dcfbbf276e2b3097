// Package dryrun provides a FichaWriter that prints what would be sent to
// the observatory platform instead of sending it.
package dryrun

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/ceplan/fichas/internal/core/domain"
	"github.com/ceplan/fichas/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.FichaWriter = (*Writer)(nil)

// dateLayout is the date format of the platform's "last updated" field.
const dateLayout = "2006-01-02"

// Writer renders each form update as a plain-text block.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// New creates a dry-run writer printing to out.
func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

// UpdateSummary prints the summary form.
func (w *Writer) UpdateSummary(ctx context.Context, code, summary string, updated time.Time) error {
	return w.block(ctx, code, "summary", func(b *strings.Builder) {
		fmt.Fprintf(b, "updated: %s\n", updated.Format(dateLayout))
		b.WriteString(summary)
		b.WriteString("\n")
	})
}

// UpdateText prints the text block form.
func (w *Writer) UpdateText(ctx context.Context, code, body string) error {
	return w.block(ctx, code, "text", func(b *strings.Builder) {
		for _, p := range strings.Split(body, "\n") {
			if p == "" {
				continue
			}
			fmt.Fprintf(b, "<p>%s</p>\n", p)
		}
	})
}

// UpdateCharts prints one row per chart entry.
func (w *Writer) UpdateCharts(ctx context.Context, code string, charts []domain.ChartEntry) error {
	return w.block(ctx, code, "charts", func(b *strings.Builder) {
		b.WriteString("disable existing charts\n")
		for _, c := range charts {
			fmt.Fprintf(b, "+ [%d] %s %s | %s\n", c.Order, c.Numeration, c.Title, c.Note)
		}
	})
}

// UpdateReferences prints the reference list.
func (w *Writer) UpdateReferences(ctx context.Context, code, references string) error {
	return w.block(ctx, code, "references", func(b *strings.Builder) {
		b.WriteString("disable existing references\n")
		for _, line := range strings.Split(references, "\n") {
			if line == "" {
				continue
			}
			fmt.Fprintf(b, "+ %s\n", line)
		}
	})
}

func (w *Writer) block(ctx context.Context, code, form string, render func(*strings.Builder)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s: %s ---\n", code, form)
	render(&b)

	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := io.WriteString(w.out, b.String())
	return err
}
