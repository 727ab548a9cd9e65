package store

import (
	"context"
	"database/sql"

	"github.com/legitimatebusiness/todo/internal/domain"
)

// TodoStore defines the interface for todo persistence.
// Every method runs as a single statement. Callers that need several
// statements to be atomic use RunInTransaction together with WithTx.
type TodoStore interface {
	// Create inserts todo and fills in its ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, todo *domain.Todo) error

	// GetByID retrieves a todo by its ID.
	// Returns ErrTodoNotFound if the todo does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Todo, error)

	// List returns every todo ordered by ID. It returns an empty slice,
	// not nil, when the store is empty.
	List(ctx context.Context) ([]*domain.Todo, error)

	// Update overwrites Title and Completed of the todo with todo.ID and
	// refreshes UpdatedAt. CreatedAt is read back from the store.
	// Returns ErrTodoNotFound if the todo does not exist.
	Update(ctx context.Context, todo *domain.Todo) error

	// Delete removes the todo with the given ID.
	// Returns ErrTodoNotFound if the todo does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a TodoStore that runs every statement on tx.
	WithTx(tx *sql.Tx) TodoStore
}
