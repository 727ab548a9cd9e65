// Package store defines the persistence interfaces for todo items.
// Implementations live under internal/platform (postgres, sqlite) and
// report failures through the sentinel errors declared here, so callers
// never depend on a specific database driver.
package store
