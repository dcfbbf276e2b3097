// Package audit provides a post-processor that reports how the citation
// markers of a processed ficha were turned into hyperlinks.
package audit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/ceplan/fichas/internal/core/domain"
	"github.com/ceplan/fichas/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.PostProcessor = (*Processor)(nil)

// ErrUnresolvedCitations is returned in strict mode when a citation has no URL.
var ErrUnresolvedCitations = errors.New("citations without URL")

// Name is the registry name of the audit processor.
const Name = "audit"

var (
	linkedCitation = regexp.MustCompile(`\[(\d+)\]`)
	plainCitation  = regexp.MustCompile(`\[([\d,\s]+)\]`)
)

// Processor tokenizes the clean text and fills ficha.Audit.
type Processor struct {
	strict bool
}

// Option configures the audit processor.
type Option func(*Processor)

// WithStrict makes Process fail when any citation is left unresolved.
func WithStrict(strict bool) Option {
	return func(p *Processor) {
		p.strict = strict
	}
}

// New creates an audit processor.
func New(opts ...Option) *Processor {
	p := &Processor{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process audits ficha.Content.CleanText and stores the result in ficha.Audit.
func (p *Processor) Process(ctx context.Context, ficha *domain.ProcessedFicha) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	audit, err := Audit(ficha.Content.CleanText)
	if err != nil {
		return err
	}
	ficha.Audit = audit

	if p.strict && !audit.Complete() {
		return fmt.Errorf("%w: %s", ErrUnresolvedCitations, joinInts(audit.Unresolved))
	}
	return nil
}

// Audit counts the anchors of text and sorts citation numbers into linked
// (inside an anchor) and unresolved (bare "[n]" outside any anchor).
func Audit(text string) (domain.LinkAudit, error) {
	var (
		audit      domain.LinkAudit
		linked     = make(map[int]struct{})
		unresolved = make(map[int]struct{})
		depth      int
	)

	z := html.NewTokenizer(strings.NewReader(text))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != nil && !errors.Is(err, io.EOF) {
				return domain.LinkAudit{}, fmt.Errorf("tokenizing clean text: %w", err)
			}
			audit.Linked = sortedKeys(linked)
			audit.Unresolved = sortedKeys(unresolved)
			return audit, nil

		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == "a" {
				audit.LinkCount++
				depth++
			}

		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "a" && depth > 0 {
				depth--
			}

		case html.TextToken:
			text := string(z.Text())
			if depth > 0 {
				collect(linked, linkedCitation, text)
			} else {
				collect(unresolved, plainCitation, text)
			}
		}
	}
}

// collect adds every number of every match of re in text to set.
func collect(set map[int]struct{}, re *regexp.Regexp, text string) {
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		for _, token := range strings.Split(m[1], ",") {
			n, err := strconv.Atoi(strings.TrimSpace(token))
			if err != nil {
				continue
			}
			set[n] = struct{}{}
		}
	}
}

func sortedKeys(set map[int]struct{}) []int {
	if len(set) == 0 {
		return nil
	}
	out := make([]int, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
