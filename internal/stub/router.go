package stub

import (
	"log"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates the router for the /todos resource.
func NewRouter(store *Store, fault *Fault, logger *log.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware chain
	r.Use(chimiddleware.RequestID)
	r.Use(Recovery(logger))
	r.Use(Logging(logger))
	r.Use(chimiddleware.RealIP)
	r.Use(fault.Middleware)

	todos := NewTodoHandler(store, logger)

	r.Route("/todos", func(r chi.Router) {
		r.Get("/", todos.ListTodos)
		r.Post("/", todos.CreateTodo)
		r.Get("/{id}", todos.GetTodo)
		r.Put("/{id}", todos.ReplaceTodo)
		r.Delete("/{id}", todos.DeleteTodo)
	})

	return r
}
