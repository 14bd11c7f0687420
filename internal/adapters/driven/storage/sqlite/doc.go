// Package sqlite provides the durable state store for praise runs.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. One database file backs two ports:
//
//   - KeyValueStore: named slots, holding the processed-submission set
//   - RunLock: time-limited leases that keep two runs from overlapping
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.praise/data/state.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode, so separate processes sharing the file also see each
// other's leases.
package sqlite
