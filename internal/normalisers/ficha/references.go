package ficha

import (
	"strconv"
	"strings"

	"github.com/ceplan/fichas/internal/core/domain"
)

// parseReferences cleans each reference line and indexes the URL of every
// line shaped like "[n] ... https://...". Lines without that shape are
// kept in the output but add nothing to the index. A later line with the
// same number overrides an earlier one.
func parseReferences(text string) (string, domain.ReferenceIndex) {
	lines := splitLines(text)
	cleaned := make([]string, 0, len(lines))
	index := make(domain.ReferenceIndex)

	for _, line := range lines {
		line = strings.TrimSpace(referenceNoise.ReplaceAllString(line, ""))
		cleaned = append(cleaned, line)

		m := referenceURL.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		index[n] = m[2]
	}

	return strings.Join(cleaned, "\n"), index
}

// splitLines splits on \n, \r\n and \r. A trailing line break does not
// produce a final empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
