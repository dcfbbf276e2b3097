package domain

import "strings"

// RemovedItem is a figure, table or note line taken out of the article text.
type RemovedItem struct {
	// Position is the index of the last kept paragraph before the line,
	// i.e. the item belongs after paragraph Position. -1 means before the first.
	Position int `json:"position"`

	// Line is the trimmed annotation line as it appeared in the text.
	Line string `json:"line"`
}

// ChartEntry is the metadata of one figure or table, rebuilt by pairing
// a header line with the note line that follows it.
type ChartEntry struct {
	Order      int    `json:"order"`
	Numeration string `json:"numeration"`
	Title      string `json:"title"`
	Note       string `json:"note"`
}

// ReferenceIndex maps a reference number to the URL found on its line.
type ReferenceIndex map[int]string

// URL returns the non-empty URL indexed under n.
func (r ReferenceIndex) URL(n int) (string, bool) {
	url, ok := r[n]
	if !ok || url == "" {
		return "", false
	}
	return url, true
}

// ProcessedContent is the output of the text/reference processor.
type ProcessedContent struct {
	// CleanText is the normalised, hyperlinked article text.
	// Paragraphs are separated by a single line break.
	CleanText string `json:"clean_text"`

	// CleanReferences is the reference list with boilerplate stripped.
	CleanReferences string `json:"clean_references"`

	// Charts holds one entry per figure/table header that had a note.
	Charts []ChartEntry `json:"charts"`

	// Index is the reference number to URL mapping used for linking.
	Index ReferenceIndex `json:"index,omitempty"`

	// Removed lists every annotation line pulled out of the text.
	Removed []RemovedItem `json:"removed,omitempty"`
}

// Summary returns the first paragraph of the clean text.
// The platform shows it as the ficha summary ("sumilla").
func (c *ProcessedContent) Summary() string {
	first, _, _ := strings.Cut(c.CleanText, "\n")
	return first
}

// Body returns every paragraph after the summary.
func (c *ProcessedContent) Body() string {
	_, rest, _ := strings.Cut(c.CleanText, "\n")
	return rest
}

// Paragraphs returns the clean text split into paragraphs.
func (c *ProcessedContent) Paragraphs() []string {
	if c.CleanText == "" {
		return nil
	}
	return strings.Split(c.CleanText, "\n")
}

// LinkAudit summarises how citation markers were resolved.
type LinkAudit struct {
	// LinkCount is the number of hyperlinks in the clean text.
	LinkCount int `json:"link_count"`

	// Linked holds the distinct citation numbers rendered as links, ascending.
	Linked []int `json:"linked,omitempty"`

	// Unresolved holds the distinct citation numbers left as plain text, ascending.
	Unresolved []int `json:"unresolved,omitempty"`
}

// Complete reports whether every citation marker became a link.
func (a LinkAudit) Complete() bool {
	return len(a.Unresolved) == 0
}
