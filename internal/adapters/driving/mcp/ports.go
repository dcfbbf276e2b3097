package mcp

import (
	"github.com/ceplan/fichas/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Ficha processes inputs and serves stored results.
	Ficha driving.FichaService

	// Catalog classifies ficha codes. Optional.
	Catalog driving.CatalogService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Ficha == nil {
		return ErrMissingFichaService
	}
	return nil
}
