// Package sqlite provides an embedded SQLite implementation of
// store.TodoStore using the pure-Go modernc.org/sqlite driver.
//
// It is meant for local development and single-node deployments where
// running PostgreSQL is unnecessary. The schema is the sqlite migration
// set in internal/migrations. Timestamps are stored as RFC 3339 text in UTC.
package sqlite
