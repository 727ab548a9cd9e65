package api

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/legitimatebusiness/todo/internal/domain"
)

// mockTodoService is a function-field implementation of service.TodoService.
type mockTodoService struct {
	CreateTodoFn  func(ctx context.Context, title string, completed bool) (*domain.Todo, error)
	GetTodoFn     func(ctx context.Context, id int64) (*domain.Todo, error)
	ListTodosFn   func(ctx context.Context) ([]*domain.Todo, error)
	ReplaceTodoFn func(ctx context.Context, id int64, title string, completed bool) (*domain.Todo, error)
	PatchTodoFn   func(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error)
	DeleteTodoFn  func(ctx context.Context, id int64) error
}

func (m *mockTodoService) CreateTodo(ctx context.Context, title string, completed bool) (*domain.Todo, error) {
	return m.CreateTodoFn(ctx, title, completed)
}

func (m *mockTodoService) GetTodo(ctx context.Context, id int64) (*domain.Todo, error) {
	return m.GetTodoFn(ctx, id)
}

func (m *mockTodoService) ListTodos(ctx context.Context) ([]*domain.Todo, error) {
	return m.ListTodosFn(ctx)
}

func (m *mockTodoService) ReplaceTodo(
	ctx context.Context,
	id int64,
	title string,
	completed bool,
) (*domain.Todo, error) {
	return m.ReplaceTodoFn(ctx, id, title, completed)
}

func (m *mockTodoService) PatchTodo(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error) {
	return m.PatchTodoFn(ctx, id, patch)
}

func (m *mockTodoService) DeleteTodo(ctx context.Context, id int64) error {
	return m.DeleteTodoFn(ctx, id)
}

// mockFactProvider returns a fixed fact.
type mockFactProvider struct {
	fact domain.CatFact
}

func (m mockFactProvider) RandomFact(ctx context.Context) domain.CatFact {
	return m.fact
}

// newTodoRouter mounts h on a chi router the way the server does.
func newTodoRouter(h *TodoHandler) chi.Router {
	r := chi.NewRouter()
	r.Route("/todos", func(r chi.Router) {
		r.Post("/", h.CreateTodo)
		r.Get("/", h.ListTodos)
		r.Get("/{id}", h.GetTodo)
		r.Put("/{id}", h.ReplaceTodo)
		r.Patch("/{id}", h.PatchTodo)
		r.Delete("/{id}", h.DeleteTodo)
	})
	return r
}
