// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services never touch the filesystem, network or database directly.
// Apart from the standard library they only use uuid for identifiers
// and errgroup for bounded batch concurrency.
package services
