package stub

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// TodoHandler serves the /todos resource from a Store.
type TodoHandler struct {
	store  *Store
	logger *log.Logger
}

// NewTodoHandler creates a handler backed by store.
func NewTodoHandler(store *Store, logger *log.Logger) *TodoHandler {
	return &TodoHandler{store: store, logger: logger}
}

// ListTodos handles GET /todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.store.List()
	if err != nil {
		h.fail(w, "list todos", err)
		return
	}
	writeJSON(w, http.StatusOK, todos)
}

// GetTodo handles GET /todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(r)
	if !ok {
		notFound(w)
		return
	}

	todo, err := h.store.Get(id)
	if errors.Is(err, ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		h.fail(w, "get todo", err)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

// CreateTodo handles POST /todos. Any id in the body is ignored.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	todo, ok := decodeTodo(w, r)
	if !ok {
		return
	}

	created, err := h.store.Create(todo)
	if err != nil {
		h.fail(w, "create todo", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ReplaceTodo handles PUT /todos/{id}. The path id wins over the body.
func (h *TodoHandler) ReplaceTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(r)
	if !ok {
		notFound(w)
		return
	}

	todo, ok := decodeTodo(w, r)
	if !ok {
		return
	}
	todo.ID = id

	replaced, err := h.store.Replace(todo)
	if errors.Is(err, ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		h.fail(w, "replace todo", err)
		return
	}
	writeJSON(w, http.StatusOK, replaced)
}

// DeleteTodo handles DELETE /todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(r)
	if !ok {
		notFound(w)
		return
	}

	err := h.store.Delete(id)
	if errors.Is(err, ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		h.fail(w, "delete todo", err)
		return
	}
	writeJSON(w, http.StatusOK, emptyObject)
}

func (h *TodoHandler) fail(w http.ResponseWriter, op string, err error) {
	if h.logger != nil {
		h.logger.Printf("%s: %v", op, err)
	}
	internalError(w)
}

// todoID parses the numeric id path parameter. Ids the service could never
// have issued are reported as missing.
func todoID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// todoRequest is the body of a create or replace. userId may arrive as a
// number or a numeric string, the same as the client accepts it.
type todoRequest struct {
	UserID    json.Number `json:"userId"`
	Title     string      `json:"title"`
	Completed bool        `json:"completed"`
}

// decodeTodo reads a todo body. Any id in it is ignored.
func decodeTodo(w http.ResponseWriter, r *http.Request) (Todo, bool) {
	var req todoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return Todo{}, false
	}

	todo := Todo{Title: req.Title, Completed: req.Completed}
	if req.UserID != "" {
		userID, err := strconv.ParseInt(req.UserID.String(), 10, 64)
		if err != nil {
			badRequest(w, "userId must be an integer")
			return Todo{}, false
		}
		todo.UserID = userID
	}
	return todo, true
}
