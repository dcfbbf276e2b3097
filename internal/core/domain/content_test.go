package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferenceIndex_URL(t *testing.T) {
	idx := ReferenceIndex{1: "https://a.test", 2: ""}

	url, ok := idx.URL(1)
	assert.True(t, ok)
	assert.Equal(t, "https://a.test", url)

	_, ok = idx.URL(2)
	assert.False(t, ok, "empty URL is not resolvable")

	_, ok = idx.URL(3)
	assert.False(t, ok)

	var nilIdx ReferenceIndex
	_, ok = nilIdx.URL(1)
	assert.False(t, ok)
}

func TestProcessedContent_SummaryAndBody(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		summary string
		body    string
	}{
		{name: "several paragraphs", text: "Uno.\nDos.\nTres", summary: "Uno.", body: "Dos.\nTres"},
		{name: "single paragraph", text: "Solo", summary: "Solo", body: ""},
		{name: "empty", text: "", summary: "", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &ProcessedContent{CleanText: tt.text}
			assert.Equal(t, tt.summary, c.Summary())
			assert.Equal(t, tt.body, c.Body())
		})
	}
}

func TestProcessedContent_Paragraphs(t *testing.T) {
	assert.Nil(t, (&ProcessedContent{}).Paragraphs())
	assert.Equal(t, []string{"a.", "b"}, (&ProcessedContent{CleanText: "a.\nb"}).Paragraphs())
}

func TestLinkAudit_Complete(t *testing.T) {
	assert.True(t, LinkAudit{Linked: []int{1}}.Complete())
	assert.False(t, LinkAudit{Unresolved: []int{2}}.Complete())
}
