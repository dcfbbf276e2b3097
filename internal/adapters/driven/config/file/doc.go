// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage (~/.fichas/config.toml)
//   - CatalogStore: TOML rubro catalog and topic map (~/.fichas/catalog.toml)
package file
