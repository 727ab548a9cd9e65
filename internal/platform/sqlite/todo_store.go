package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/legitimatebusiness/todo/internal/domain"
	"github.com/legitimatebusiness/todo/internal/store"
)

// SQLiteTodoStore implements store.TodoStore on top of SQLite.
type SQLiteTodoStore struct {
	db     store.DBTX
	logger *slog.Logger
	now    func() time.Time
}

// NewSQLiteTodoStore creates a TodoStore over db. If logger is nil, the
// default logger is used.
func NewSQLiteTodoStore(db store.DBTX, logger *slog.Logger) *SQLiteTodoStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &SQLiteTodoStore{
		db:     db,
		logger: logger.With(slog.String("component", "todo_store")),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

var _ store.TodoStore = (*SQLiteTodoStore)(nil)

// todoRow is the on-disk shape of a todo; timestamps are TEXT.
type todoRow struct {
	id        int64
	title     string
	completed bool
	createdAt string
	updatedAt string
}

func (r todoRow) toDomain() (*domain.Todo, error) {
	createdAt, err := parseTime(r.createdAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := parseTime(r.updatedAt)
	if err != nil {
		return nil, err
	}

	return &domain.Todo{
		ID:        r.id,
		Title:     r.title,
		Completed: r.completed,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(s scanner) (*domain.Todo, error) {
	var r todoRow
	if err := s.Scan(&r.id, &r.title, &r.completed, &r.createdAt, &r.updatedAt); err != nil {
		return nil, err
	}
	return r.toDomain()
}

// Create implements store.TodoStore.Create
func (s *SQLiteTodoStore) Create(ctx context.Context, todo *domain.Todo) error {
	now := s.now()

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO todos (title, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		RETURNING id`,
		todo.Title, todo.Completed, formatTime(now), formatTime(now),
	).Scan(&todo.ID)
	if err != nil {
		s.logger.Error("failed to insert todo", slog.String("error", err.Error()))
		return store.NewStoreError("todo", "create", "insert failed", MapError(err))
	}

	todo.CreatedAt = now
	todo.UpdatedAt = now
	return nil
}

// GetByID implements store.TodoStore.GetByID
func (s *SQLiteTodoStore) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, completed, created_at, updated_at
		FROM todos
		WHERE id = ?`, id)

	todo, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTodoNotFound
		}
		s.logger.Error("failed to get todo",
			slog.Int64("todo_id", id),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("todo", "get", "select failed", MapError(err))
	}
	return todo, nil
}

// List implements store.TodoStore.List
func (s *SQLiteTodoStore) List(ctx context.Context) ([]*domain.Todo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, completed, created_at, updated_at
		FROM todos
		ORDER BY id`)
	if err != nil {
		s.logger.Error("failed to list todos", slog.String("error", err.Error()))
		return nil, store.NewStoreError("todo", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	todos := make([]*domain.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, store.NewStoreError("todo", "list", "scan failed", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("todo", "list", "row iteration failed", MapError(err))
	}

	return todos, nil
}

// Update implements store.TodoStore.Update
func (s *SQLiteTodoStore) Update(ctx context.Context, todo *domain.Todo) error {
	now := s.now()

	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		UPDATE todos
		SET title = ?, completed = ?, updated_at = ?
		WHERE id = ?
		RETURNING created_at`,
		todo.Title, todo.Completed, formatTime(now), todo.ID,
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

	created, err := parseTime(createdAt)
	if err != nil {
		return store.NewStoreError("todo", "update", "read back failed", err)
	}

	todo.CreatedAt = created
	todo.UpdatedAt = now
	return nil
}

// Delete implements store.TodoStore.Delete
func (s *SQLiteTodoStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		s.logger.Error("failed to delete todo",
			slog.Int64("todo_id", id),
			slog.String("error", err.Error()))
		return store.NewStoreError("todo", "delete", "delete failed", MapError(err))
	}

	n, err := result.RowsAffected()
	if err != nil {
		return store.NewStoreError("todo", "delete", "rows affected failed", err)
	}
	if n == 0 {
		return store.ErrTodoNotFound
	}
	return nil
}

// WithTx implements store.TodoStore.WithTx
func (s *SQLiteTodoStore) WithTx(tx *sql.Tx) store.TodoStore {
	return &SQLiteTodoStore{
		db:     tx,
		logger: s.logger,
		now:    s.now,
	}
}
