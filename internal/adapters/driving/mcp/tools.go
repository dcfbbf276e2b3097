package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ceplan/fichas/internal/core/domain"
)

// ProcessInput is the input schema for the process_ficha tool.
type ProcessInput struct {
	Code          string `json:"code" jsonschema:"the ficha code, e.g. t12 or r4_apu"`
	ArticleText   string `json:"article_text" jsonschema:"the pasted article text"`
	ReferenceText string `json:"reference_text,omitempty" jsonschema:"the pasted numbered reference list"`
}

// FichaOutput is the result shape shared by process_ficha and get_ficha.
type FichaOutput struct {
	Code            string              `json:"code"`
	Summary         string              `json:"summary"`
	CleanText       string              `json:"clean_text"`
	CleanReferences string              `json:"clean_references"`
	Charts          []domain.ChartEntry `json:"charts"`
	LinkCount       int                 `json:"link_count"`
	Unresolved      []int               `json:"unresolved,omitempty"`
	Rubro           string              `json:"rubro,omitempty"`
	Subrubro        string              `json:"subrubro,omitempty"`
	ProcessedAt     string              `json:"processed_at"`
}

// CodeInput is the input schema for tools addressed by ficha code.
type CodeInput struct {
	Code string `json:"code" jsonschema:"the ficha code"`
}

// ClassifyOutput is the output schema for the classify_ficha tool.
type ClassifyOutput struct {
	Code       string `json:"code"`
	Rubro      string `json:"rubro,omitempty"`
	Subrubro   string `json:"subrubro,omitempty"`
	Classified bool   `json:"classified"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "process_ficha",
		Description: "Clean a ficha article, link its citations to the reference list and extract chart captions",
	}, s.handleProcess)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_ficha",
		Description: "Return the stored result for a processed ficha",
	}, s.handleGet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "classify_ficha",
		Description: "Find the rubro and subrubro a ficha code belongs to",
	}, s.handleClassify)
}

// handleProcess handles the process_ficha tool invocation.
func (s *Server) handleProcess(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProcessInput,
) (*mcp.CallToolResult, FichaOutput, error) {
	result, err := s.ports.Ficha.Process(ctx, domain.FichaInput{
		Code:          input.Code,
		ArticleText:   input.ArticleText,
		ReferenceText: input.ReferenceText,
	})
	if err != nil {
		return nil, FichaOutput{}, err
	}
	return nil, toFichaOutput(result), nil
}

// handleGet handles the get_ficha tool invocation.
func (s *Server) handleGet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CodeInput,
) (*mcp.CallToolResult, FichaOutput, error) {
	result, err := s.ports.Ficha.Get(ctx, input.Code)
	if err != nil {
		return nil, FichaOutput{}, err
	}
	return nil, toFichaOutput(result), nil
}

// handleClassify handles the classify_ficha tool invocation.
// An unknown code is reported with Classified false rather than as an error.
func (s *Server) handleClassify(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CodeInput,
) (*mcp.CallToolResult, ClassifyOutput, error) {
	if s.ports.Catalog == nil {
		return nil, ClassifyOutput{}, ErrMissingCatalogService
	}

	output := ClassifyOutput{Code: input.Code}
	class, err := s.ports.Catalog.Classify(input.Code)
	switch {
	case errors.Is(err, domain.ErrUnclassified):
		return nil, output, nil
	case err != nil:
		return nil, ClassifyOutput{}, err
	}

	output.Rubro = class.Rubro
	output.Subrubro = class.Subrubro
	output.Classified = true
	return nil, output, nil
}

func toFichaOutput(f *domain.ProcessedFicha) FichaOutput {
	charts := f.Content.Charts
	if charts == nil {
		charts = []domain.ChartEntry{}
	}
	return FichaOutput{
		Code:            f.Code,
		Summary:         f.Content.Summary(),
		CleanText:       f.Content.CleanText,
		CleanReferences: f.Content.CleanReferences,
		Charts:          charts,
		LinkCount:       f.Audit.LinkCount,
		Unresolved:      f.Audit.Unresolved,
		Rubro:           f.Classification.Rubro,
		Subrubro:        f.Classification.Subrubro,
		ProcessedAt:     f.ProcessedAt.UTC().Format(time.RFC3339),
	}
}
