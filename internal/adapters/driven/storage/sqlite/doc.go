// Package sqlite provides a SQLite-backed implementation of driven.SnapshotStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. Each static export is recorded as a run with one row per route.
//
// # Schema
//
// The schema is managed through versioned migrations stored in the migrations/
// directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at .tawa/snapshots.db relative to the
// working directory.
package sqlite
