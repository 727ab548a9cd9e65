package api

import (
	"fmt"
	"time"

	"github.com/legitimatebusiness/todo/internal/domain"
)

// TodoRequest is the body of POST /todos and PUT /todos/{id}.
// Missing fields take their zero value.
type TodoRequest struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TodoPatchRequest is the body of PATCH /todos/{id}. Absent fields are left
// unchanged.
type TodoPatchRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// toPatch converts the request to a domain.TodoPatch.
func (r TodoPatchRequest) toPatch() domain.TodoPatch {
	return domain.TodoPatch{
		Title:     r.Title,
		Completed: r.Completed,
	}
}

// Link is a single hypermedia link.
type Link struct {
	Href string `json:"href"`
}

// Links holds the links of a resource.
type Links struct {
	Self Link `json:"self"`
}

// TodoResponse is the representation of a todo. The ID is always present.
type TodoResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Links     Links     `json:"_links"`
}

// TodoListResponse wraps the todo collection for GET /todos.
type TodoListResponse struct {
	Embedded struct {
		Todos []TodoResponse `json:"todos"`
	} `json:"_embedded"`
	Links Links `json:"_links"`
}

// CatFactResponse is the body of GET /fact.
type CatFactResponse struct {
	Text string `json:"text"`
}

// todoPath returns the canonical path of the todo with the given ID.
func todoPath(id int64) string {
	return fmt.Sprintf("/todos/%d", id)
}

// todoToResponse converts a domain.Todo to a TodoResponse
func todoToResponse(todo *domain.Todo) TodoResponse {
	return TodoResponse{
		ID:        todo.ID,
		Title:     todo.Title,
		Completed: todo.Completed,
		CreatedAt: todo.CreatedAt,
		UpdatedAt: todo.UpdatedAt,
		Links:     Links{Self: Link{Href: todoPath(todo.ID)}},
	}
}

// todosToListResponse converts todos to the collection envelope. The todos
// array is never null.
func todosToListResponse(todos []*domain.Todo) TodoListResponse {
	var resp TodoListResponse
	resp.Embedded.Todos = make([]TodoResponse, 0, len(todos))
	for _, todo := range todos {
		resp.Embedded.Todos = append(resp.Embedded.Todos, todoToResponse(todo))
	}
	resp.Links = Links{Self: Link{Href: "/todos"}}
	return resp
}
