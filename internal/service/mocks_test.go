package service

import (
	"context"
	"database/sql"

	"github.com/legitimatebusiness/todo/internal/domain"
	"github.com/legitimatebusiness/todo/internal/store"
)

// mockTodoStore is a function-field implementation of store.TodoStore.
type mockTodoStore struct {
	CreateFn  func(ctx context.Context, todo *domain.Todo) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Todo, error)
	ListFn    func(ctx context.Context) ([]*domain.Todo, error)
	UpdateFn  func(ctx context.Context, todo *domain.Todo) error
	DeleteFn  func(ctx context.Context, id int64) error

	txCalls int
}

func (m *mockTodoStore) Create(ctx context.Context, todo *domain.Todo) error {
	return m.CreateFn(ctx, todo)
}

func (m *mockTodoStore) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockTodoStore) List(ctx context.Context) ([]*domain.Todo, error) {
	return m.ListFn(ctx)
}

func (m *mockTodoStore) Update(ctx context.Context, todo *domain.Todo) error {
	return m.UpdateFn(ctx, todo)
}

func (m *mockTodoStore) Delete(ctx context.Context, id int64) error {
	return m.DeleteFn(ctx, id)
}

func (m *mockTodoStore) WithTx(tx *sql.Tx) store.TodoStore {
	m.txCalls++
	return m
}
