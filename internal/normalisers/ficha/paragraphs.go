package ficha

import (
	"strings"

	"github.com/ceplan/fichas/internal/core/domain"
)

// normaliseParagraphs cleans the article text and returns the kept prose
// together with every annotation line that was taken out of it.
//
// A table header opens a suppression window that the next note line
// closes; paragraphs inside the window are dropped. Outside a window,
// figure captions are removed and every other non-empty paragraph is kept
// with a forced trailing full stop.
func normaliseParagraphs(text string) (string, []domain.RemovedItem) {
	var (
		kept        []string
		removed     []domain.RemovedItem
		suppressing bool
		position    = -1
	)

	for _, paragraph := range strings.Split(text, "\n") {
		paragraph = strings.TrimSpace(paragraph)

		if tableHeader.MatchString(paragraph) {
			removed = append(removed, domain.RemovedItem{Position: position, Line: paragraph})
			suppressing = true
			continue
		}

		if noteLine.MatchString(paragraph) {
			removed = append(removed, domain.RemovedItem{Position: position, Line: paragraph})
			suppressing = false
			continue
		}

		if suppressing || paragraph == "" {
			continue
		}

		paragraph = ensurePeriod(paragraph)

		if captionLine.MatchString(paragraph) {
			removed = append(removed, domain.RemovedItem{Position: position, Line: paragraph})
			continue
		}

		kept = append(kept, paragraph)
		position++
	}

	return normaliseDigits(stripFinalPeriod(strings.Join(kept, "\n"))), removed
}

// ensurePeriod appends a full stop unless the paragraph already ends with one.
func ensurePeriod(paragraph string) string {
	if strings.HasSuffix(paragraph, ".") {
		return paragraph
	}
	return paragraph + "."
}

// stripFinalPeriod removes exactly one trailing full stop.
func stripFinalPeriod(text string) string {
	return strings.TrimSuffix(text, ".")
}
