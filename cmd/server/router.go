package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/legitimatebusiness/todo/internal/api"
	apiMiddleware "github.com/legitimatebusiness/todo/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	todoHandler := api.NewTodoHandler(app.todoService)
	factHandler := api.NewFactHandler(app.factService)

	r.Get("/fact", factHandler.GetFact)

	r.Route("/todos", func(r chi.Router) {
		r.Post("/", todoHandler.CreateTodo)
		r.Get("/", todoHandler.ListTodos)
		r.Get("/{id}", todoHandler.GetTodo)
		r.Put("/{id}", todoHandler.ReplaceTodo)
		r.Patch("/{id}", todoHandler.PatchTodo)
		r.Delete("/{id}", todoHandler.DeleteTodo)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
