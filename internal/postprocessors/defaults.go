package postprocessors

import (
	"github.com/ceplan/fichas/internal/core/ports/driven"
	"github.com/ceplan/fichas/internal/postprocessors/audit"
)

// DefaultNames is the processor chain used when none is configured.
var DefaultNames = []string{audit.Name}

// RegisterDefaults registers all built-in processors with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(audit.Name, buildAudit)
}

// buildAudit creates the link audit processor from generic config.
// Supported config keys:
//   - strict (bool): fail the ficha when a citation has no URL
func buildAudit(cfg map[string]any) (driven.PostProcessor, error) {
	return audit.New(audit.WithStrict(getBoolFromConfig(cfg, "strict"))), nil
}

// getBoolFromConfig safely extracts a bool from generic config map.
func getBoolFromConfig(cfg map[string]any, key string) bool {
	b, _ := cfg[key].(bool)
	return b
}
