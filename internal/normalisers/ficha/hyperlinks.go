package ficha

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ceplan/fichas/internal/core/domain"
)

// linkTemplate renders one citation as a link opening in a new tab.
const linkTemplate = `<a href="%s" target="_blank">[%d]</a>`

// linkCitations rewrites every citation group in text. Each number with a
// known URL becomes a link; the rest stay as plain "[n]". Numbers from one
// group are joined by a single space.
func linkCitations(text string, index domain.ReferenceIndex) string {
	return citationGroup.ReplaceAllStringFunc(text, func(group string) string {
		numbers, ok := parseGroup(group)
		if !ok {
			return group
		}

		parts := make([]string, len(numbers))
		for i, n := range numbers {
			if url, found := index.URL(n); found {
				parts[i] = fmt.Sprintf(linkTemplate, url, n)
			} else {
				parts[i] = "[" + strconv.Itoa(n) + "]"
			}
		}
		return strings.Join(parts, " ")
	})
}

// parseGroup reads the numbers of a "[a, b, ...]" group. Empty tokens are
// skipped. A token that is not a single integer (e.g. "[1 2]") makes the
// whole group unparseable, and so does a group with no numbers at all.
func parseGroup(group string) ([]int, bool) {
	inner := strings.TrimSuffix(strings.TrimPrefix(group, "["), "]")

	var numbers []int
	for _, token := range strings.Split(inner, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, false
		}
		numbers = append(numbers, n)
	}
	return numbers, len(numbers) > 0
}
