// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - TextProcessor: Turns raw ficha text into hyperlinked content
//   - ResultStore: Processed ficha persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - CatalogStore: Rubro/subrubro catalog. Without it, the built-in catalog is used.
//   - InputSource: Ficha input files. Only needed by batch and watch.
//   - PostProcessorPipeline: Link audit. Without it, results carry an empty audit.
//   - FichaWriter: The platform automation layer. Without it, publish is unavailable.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
