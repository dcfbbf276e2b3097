// Package sqlite provides a SQLite-based implementation of driven.ResultStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// The fichas table keeps one row per ficha code; the input, content and audit
// columns hold JSON.
//
// # Data Location
//
// By default, the database is stored at ~/.fichas/data/fichas.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
