package ficha

import "github.com/ceplan/fichas/internal/core/domain"

// Processor turns the raw article text and reference list of one ficha
// into hyperlinked text, a clean reference list and chart entries.
// It is safe to call from multiple goroutines.
type Processor struct {
	articleText   string
	referenceText string
}

// New creates a processor for one ficha's raw text.
func New(articleText, referenceText string) *Processor {
	return &Processor{
		articleText:   articleText,
		referenceText: referenceText,
	}
}

// Process runs the full pipeline and returns the clean hyperlinked text,
// the clean reference list and the chart entries.
func (p *Processor) Process() (cleanText, cleanReferences string, charts []domain.ChartEntry) {
	r := p.Result()
	return r.CleanText, r.CleanReferences, r.Charts
}

// Result runs the full pipeline and also returns the reference index and
// the removed annotation lines.
func (p *Processor) Result() *domain.ProcessedContent {
	text, removed := normaliseParagraphs(p.articleText)
	references, index := parseReferences(p.referenceText)
	charts := buildCharts(removed)

	return &domain.ProcessedContent{
		CleanText:       linkCitations(text, index),
		CleanReferences: references,
		Charts:          charts,
		Index:           index,
		Removed:         removed,
	}
}
