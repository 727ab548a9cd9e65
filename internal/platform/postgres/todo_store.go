package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/legitimatebusiness/todo/internal/domain"
	"github.com/legitimatebusiness/todo/internal/store"
)

const (
	insertTodoQuery = `
		INSERT INTO todos (title, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	selectTodoQuery = `
		SELECT id, title, completed, created_at, updated_at
		FROM todos
		WHERE id = $1`

	listTodosQuery = `
		SELECT id, title, completed, created_at, updated_at
		FROM todos
		ORDER BY id`

	updateTodoQuery = `
		UPDATE todos
		SET title = $1, completed = $2, updated_at = $3
		WHERE id = $4
		RETURNING created_at`

	deleteTodoQuery = `DELETE FROM todos WHERE id = $1`
)

// PostgresTodoStore implements the store.TodoStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTodoStore struct {
	db     store.DBTX
	logger *slog.Logger
	now    func() time.Time
}

// NewPostgresTodoStore creates a new PostgreSQL implementation of the TodoStore interface.
// If logger is nil, the default logger is used. Timestamps are truncated to
// microseconds, the precision of TIMESTAMPTZ.
func NewPostgresTodoStore(db store.DBTX, logger *slog.Logger) *PostgresTodoStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTodoStore{
		db:     db,
		logger: logger.With(slog.String("component", "todo_store")),
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// Ensure PostgresTodoStore implements store.TodoStore interface
var _ store.TodoStore = (*PostgresTodoStore)(nil)

// Create implements store.TodoStore.Create
func (s *PostgresTodoStore) Create(ctx context.Context, todo *domain.Todo) error {
	now := s.now()

	err := s.db.QueryRowContext(ctx, insertTodoQuery,
		todo.Title,
		todo.Completed,
		now,
		now,
	).Scan(&todo.ID)
	if err != nil {
		s.logger.Error("failed to insert todo", slog.String("error", err.Error()))
		return store.NewStoreError("todo", "create", "insert failed", MapError(err))
	}

	todo.CreatedAt = now
	todo.UpdatedAt = now

	s.logger.Debug("todo created", slog.Int64("todo_id", todo.ID))
	return nil
}

// GetByID implements store.TodoStore.GetByID
func (s *PostgresTodoStore) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	var todo domain.Todo

	err := s.db.QueryRowContext(ctx, selectTodoQuery, id).Scan(
		&todo.ID,
		&todo.Title,
		&todo.Completed,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTodoNotFound
		}
		s.logger.Error("failed to get todo",
			slog.Int64("todo_id", id),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("todo", "get", "select failed", MapError(err))
	}

	return &todo, nil
}

// List implements store.TodoStore.List
func (s *PostgresTodoStore) List(ctx context.Context) ([]*domain.Todo, error) {
	rows, err := s.db.QueryContext(ctx, listTodosQuery)
	if err != nil {
		s.logger.Error("failed to list todos", slog.String("error", err.Error()))
		return nil, store.NewStoreError("todo", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	todos := make([]*domain.Todo, 0)
	for rows.Next() {
		var todo domain.Todo
		if err := rows.Scan(
			&todo.ID,
			&todo.Title,
			&todo.Completed,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		); err != nil {
			return nil, store.NewStoreError("todo", "list", "scan failed", err)
		}
		todos = append(todos, &todo)
	}

	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("todo", "list", "row iteration failed", MapError(err))
	}

	return todos, nil
}

// Update implements store.TodoStore.Update
func (s *PostgresTodoStore) Update(ctx context.Context, todo *domain.Todo) error {
	now := s.now()

	var createdAt time.Time
	err := s.db.QueryRowContext(ctx, updateTodoQuery,
		todo.Title,
		todo.Completed,
		now,
		todo.ID,
	).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrTodoNotFound
		}
		s.logger.Error("failed to update todo",
			slog.Int64("todo_id", todo.ID),
			slog.String("error", err.Error()))
		return store.NewStoreError("todo", "update", "update failed", MapError(err))
	}

	todo.CreatedAt = createdAt
	todo.UpdatedAt = now
	return nil
}

// Delete implements store.TodoStore.Delete
func (s *PostgresTodoStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, deleteTodoQuery, id)
	if err != nil {
		s.logger.Error("failed to delete todo",
			slog.Int64("todo_id", id),
			slog.String("error", err.Error()))
		return store.NewStoreError("todo", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrTodoNotFound); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	s.logger.Debug("todo deleted", slog.Int64("todo_id", id))
	return nil
}

// WithTx implements store.TodoStore.WithTx
func (s *PostgresTodoStore) WithTx(tx *sql.Tx) store.TodoStore {
	return &PostgresTodoStore{
		db:     tx,
		logger: s.logger,
		now:    s.now,
	}
}
