// Package domain defines the core business entities for fichas.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FichaInput: raw article text and reference list for one ficha
//   - ProcessedContent: hyperlinked text, clean references and chart entries
//   - ChartEntry: figure/table metadata rebuilt from removed caption lines
//   - Catalog: rubro/subrubro classification of ficha codes
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
