package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ceplan/fichas/internal/core/domain"
)

const (
	uriScheme = "fichas://"

	referencesSuffix = "/references"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "fichas",
		Name:        "fichas",
		Description: "Stored ficha results",
		MIMEType:    "application/json",
	}, s.handleFichasResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "catalog",
		Name:        "catalog",
		Description: "Rubro catalog used to classify ficha codes",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "fichas/{code}",
		Name:        "ficha-text",
		Description: "Clean article text of a processed ficha",
		MIMEType:    "text/plain",
	}, s.handleFichaTextResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "fichas/{code}" + referencesSuffix,
		Name:        "ficha-references",
		Description: "Clean reference list of a processed ficha",
		MIMEType:    "text/plain",
	}, s.handleFichaTextResource)
}

// handleFichasResource lists the stored results.
func (s *Server) handleFichasResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	fichas, err := s.ports.Ficha.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing fichas: %w", err)
	}

	type fichaInfo struct {
		Code        string `json:"code"`
		Rubro       string `json:"rubro,omitempty"`
		Subrubro    string `json:"subrubro,omitempty"`
		Unresolved  int    `json:"unresolved"`
		ProcessedAt string `json:"processed_at"`
		URI         string `json:"uri"`
	}

	infos := make([]fichaInfo, len(fichas))
	for i := range fichas {
		infos[i] = fichaInfo{
			Code:        fichas[i].Code,
			Rubro:       fichas[i].Classification.Rubro,
			Subrubro:    fichas[i].Classification.Subrubro,
			Unresolved:  len(fichas[i].Audit.Unresolved),
			ProcessedAt: fichas[i].ProcessedAt.UTC().Format("2006-01-02T15:04:05Z"),
			URI:         uriScheme + "fichas/" + fichas[i].Code,
		}
	}

	return jsonResult(req.Params.URI, infos)
}

// handleCatalogResource returns the rubro catalog in match order.
func (s *Server) handleCatalogResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Catalog == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResult(req.Params.URI, s.ports.Catalog.Rubros())
}

// handleFichaTextResource serves the clean text or the clean references of
// one ficha, depending on the URI.
func (s *Server) handleFichaTextResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	code, references := extractFichaCode(req.Params.URI)
	if code == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	ficha, err := s.ports.Ficha.Get(ctx, code)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting ficha: %w", err)
	}

	text := ficha.Content.CleanText
	if references {
		text = ficha.Content.CleanReferences
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		}},
	}, nil
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractFichaCode extracts the code from fichas://fichas/{code} or
// fichas://fichas/{code}/references.
func extractFichaCode(uri string) (code string, references bool) {
	const prefix = uriScheme + "fichas/"

	if !strings.HasPrefix(uri, prefix) {
		return "", false
	}
	rest := strings.TrimPrefix(uri, prefix)
	if strings.HasSuffix(rest, referencesSuffix) {
		rest = strings.TrimSuffix(rest, referencesSuffix)
		references = true
	}
	if rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	return rest, references
}
