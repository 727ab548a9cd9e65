package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/legitimatebusiness/todo/internal/domain"
	"github.com/legitimatebusiness/todo/internal/store"
)

// TodoService provides todo operations to the HTTP layer.
type TodoService interface {
	// CreateTodo stores a new todo and returns it with its assigned ID.
	CreateTodo(ctx context.Context, title string, completed bool) (*domain.Todo, error)

	// GetTodo retrieves a todo by its ID
	GetTodo(ctx context.Context, id int64) (*domain.Todo, error)

	// ListTodos returns all todos ordered by ID
	ListTodos(ctx context.Context) ([]*domain.Todo, error)

	// ReplaceTodo overwrites every mutable field of an existing todo.
	ReplaceTodo(ctx context.Context, id int64, title string, completed bool) (*domain.Todo, error)

	// PatchTodo changes only the fields set in patch.
	PatchTodo(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error)

	// DeleteTodo removes a todo by its ID
	DeleteTodo(ctx context.Context, id int64) error
}

// todoServiceImpl implements the TodoService interface
type todoServiceImpl struct {
	db     *sql.DB
	todos  store.TodoStore
	logger *slog.Logger
}

// NewTodoService creates a TodoService. db is used only to start
// transactions for multi-statement operations. If logger is nil, the
// default logger is used.
func NewTodoService(db *sql.DB, todos store.TodoStore, logger *slog.Logger) TodoService {
	if logger == nil {
		logger = slog.Default()
	}
	return &todoServiceImpl{
		db:     db,
		todos:  todos,
		logger: logger.With(slog.String("component", "todo_service")),
	}
}

// CreateTodo implements TodoService.CreateTodo
func (s *todoServiceImpl) CreateTodo(ctx context.Context, title string, completed bool) (*domain.Todo, error) {
	todo := domain.NewTodo(title, completed)
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, NewTodoServiceError("create_todo", "failed to store todo", err)
	}

	s.logger.DebugContext(ctx, "todo created", slog.Int64("todo_id", todo.ID))
	return todo, nil
}

// GetTodo implements TodoService.GetTodo
func (s *todoServiceImpl) GetTodo(ctx context.Context, id int64) (*domain.Todo, error) {
	todo, err := s.todos.GetByID(ctx, id)
	if err != nil {
		return nil, NewTodoServiceError("get_todo", "failed to retrieve todo", err)
	}
	return todo, nil
}

// ListTodos implements TodoService.ListTodos
func (s *todoServiceImpl) ListTodos(ctx context.Context) ([]*domain.Todo, error) {
	todos, err := s.todos.List(ctx)
	if err != nil {
		return nil, NewTodoServiceError("list_todos", "failed to list todos", err)
	}
	return todos, nil
}

// ReplaceTodo implements TodoService.ReplaceTodo
func (s *todoServiceImpl) ReplaceTodo(
	ctx context.Context,
	id int64,
	title string,
	completed bool,
) (*domain.Todo, error) {
	todo := &domain.Todo{ID: id, Title: title, Completed: completed}
	if err := s.todos.Update(ctx, todo); err != nil {
		return nil, NewTodoServiceError("replace_todo", "failed to update todo", err)
	}
	return todo, nil
}

// PatchTodo implements TodoService.PatchTodo. The read and the write run
// in one transaction.
func (s *todoServiceImpl) PatchTodo(
	ctx context.Context,
	id int64,
	patch domain.TodoPatch,
) (*domain.Todo, error) {
	var patched *domain.Todo

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.todos.WithTx(tx)

		todo, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		patch.Apply(todo)
		if err := txStore.Update(ctx, todo); err != nil {
			return err
		}

		patched = todo
		return nil
	})
	if err != nil {
		return nil, NewTodoServiceError("patch_todo", "failed to patch todo", err)
	}

	return patched, nil
}

// DeleteTodo implements TodoService.DeleteTodo
func (s *todoServiceImpl) DeleteTodo(ctx context.Context, id int64) error {
	if err := s.todos.Delete(ctx, id); err != nil {
		return NewTodoServiceError("delete_todo", "failed to delete todo", err)
	}

	s.logger.DebugContext(ctx, "todo deleted", slog.Int64("todo_id", id))
	return nil
}
