// Package mcp provides an MCP (Model Context Protocol) server adapter for fichas.
// It lets assistants process ficha text and read stored results.
package mcp

import "errors"

// ErrMissingFichaService is returned when the ficha service is not provided.
var ErrMissingFichaService = errors.New("mcp: ficha service is required")

// ErrMissingCatalogService is returned by tools that need the catalog when
// none was configured.
var ErrMissingCatalogService = errors.New("mcp: catalog service not configured")
