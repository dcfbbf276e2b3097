package domain

import (
	"strings"
	"time"
)

// FichaInput is the raw material for one ficha: the pasted article text
// and the pasted reference list.
type FichaInput struct {
	// Code identifies the ficha on the platform (e.g. "t12", "r4_apu").
	Code string `json:"code"`

	// ArticleText is the multi-paragraph narrative text.
	ArticleText string `json:"article_text"`

	// ReferenceText is the numbered reference list, one entry per line.
	ReferenceText string `json:"reference_text"`
}

// Validate checks that the input can be processed.
func (in FichaInput) Validate() error {
	if strings.TrimSpace(in.Code) == "" {
		return ErrInvalidInput
	}
	if strings.ContainsAny(in.Code, " \t\r\n/\\") {
		return ErrInvalidInput
	}
	return nil
}

// ProcessedFicha is a processed ficha as kept by the result store.
type ProcessedFicha struct {
	// ID is the unique identifier for this result.
	ID string `json:"id"`

	// Code is the ficha code. A store keeps one result per code.
	Code string `json:"code"`

	// RunID groups results produced by the same command invocation.
	RunID string `json:"run_id"`

	// Input is the raw text the result was produced from.
	Input FichaInput `json:"input"`

	// Content is the processor output.
	Content ProcessedContent `json:"content"`

	// Audit is the citation link report.
	Audit LinkAudit `json:"audit"`

	// Classification is the rubro/subrubro the code belongs to, if known.
	Classification Classification `json:"classification"`

	// ProcessedAt is when processing finished.
	ProcessedAt time.Time `json:"processed_at"`
}

// BatchItem is the outcome of processing one input inside a batch.
type BatchItem struct {
	Code   string
	Result *ProcessedFicha
	Err    error
}

// InputChange reports that the input files of a ficha changed on disk.
type InputChange struct {
	Code  string
	Input FichaInput

	// Removed is true when the ficha no longer has both input files.
	Removed bool
}
