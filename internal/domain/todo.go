package domain

import "time"

// Todo is a single item on the todo list.
// ID is assigned by the store on creation and never changes afterwards.
type Todo struct {
	ID        int64
	Title     string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTodo creates an unsaved Todo. The store assigns ID and timestamps.
func NewTodo(title string, completed bool) *Todo {
	return &Todo{
		Title:     title,
		Completed: completed,
	}
}

// TodoPatch holds the fields of a partial update. Nil fields are left unchanged.
type TodoPatch struct {
	Title     *string
	Completed *bool
}

// Apply copies the non-nil fields of p onto t.
func (p TodoPatch) Apply(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}

// ValidateTodoID reports whether id can identify a stored Todo.
func ValidateTodoID(id int64) error {
	if id <= 0 {
		return NewValidationError("id", "must be a positive integer", ErrInvalidID)
	}
	return nil
}
