// Package postgres provides the PostgreSQL implementation of store.TodoStore.
// Queries go through database/sql with the pgx stdlib driver, and driver
// errors are translated into the sentinel errors of the store package.
package postgres
