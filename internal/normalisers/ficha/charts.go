package ficha

import (
	"strings"

	"github.com/ceplan/fichas/internal/core/domain"
)

// buildCharts pairs every figure/table header with the note that follows
// it. A header replaced by another header before any note is dropped, and
// so is a note with no open header. Other removed lines are ignored.
func buildCharts(removed []domain.RemovedItem) []domain.ChartEntry {
	var (
		charts  []domain.ChartEntry
		current *domain.ChartEntry
	)

	for _, item := range removed {
		switch {
		case strings.HasPrefix(item.Line, "Figura"), strings.HasPrefix(item.Line, "Tabla"):
			numeration, title, _ := strings.Cut(item.Line, ". ")
			current = &domain.ChartEntry{
				Order:      item.Position,
				Numeration: ensurePeriod(numeration),
				Title:      title,
			}
		case strings.HasPrefix(item.Line, "Nota"):
			if current == nil {
				continue
			}
			current.Note = item.Line
			charts = append(charts, *current)
			current = nil
		}
	}

	return charts
}
