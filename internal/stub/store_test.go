package stub

import (
	"errors"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewSeededStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSeedTodos(t *testing.T) {
	todos, err := SeedTodos()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 200 {
		t.Fatalf("expected 200 todos, got %d", len(todos))
	}

	want := Todo{UserID: 1, ID: 1, Title: "delectus aut autem", Completed: false}
	if todos[0] != want {
		t.Errorf("expected %+v, got %+v", want, todos[0])
	}
}

func TestStore_List(t *testing.T) {
	store := newTestStore(t)

	todos, err := store.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 200 {
		t.Fatalf("expected 200 todos, got %d", len(todos))
	}
	for i, todo := range todos {
		if todo.ID != int64(i+1) {
			t.Fatalf("expected todos ordered by id, got id %d at %d", todo.ID, i)
		}
	}
}

func TestStore_ListEmpty(t *testing.T) {
	store, err := NewStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	todos, err := store.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if todos == nil || len(todos) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", todos)
	}
}

func TestStore_Get(t *testing.T) {
	store := newTestStore(t)

	todo, err := store.Get(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if todo.Title != "delectus aut autem" || todo.UserID != 1 {
		t.Errorf("unexpected todo %+v", todo)
	}

	if _, err := store.Get(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Create(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Create(Todo{UserID: 1, Title: "Finish this kata", Completed: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 201 {
		t.Errorf("expected id 201, got %d", created.ID)
	}

	got, err := store.Get(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != *created {
		t.Errorf("expected %+v, got %+v", created, got)
	}
}

func TestStore_Replace(t *testing.T) {
	store := newTestStore(t)

	replaced, err := store.Replace(Todo{ID: 3, UserID: 2, Title: "renamed", Completed: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != *replaced {
		t.Errorf("expected %+v, got %+v", replaced, got)
	}

	if _, err := store.Replace(Todo{ID: 9999, Title: "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)

	if err := store.Delete(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected deleted todo to be gone, got %v", err)
	}
	if err := store.Delete(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestNewStore_File(t *testing.T) {
	path := t.TempDir() + "/todos.db"

	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if _, err := store.Create(Todo{UserID: 1, Title: "persisted"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.Close()

	reopened, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer reopened.Close()

	todo, err := reopened.Get(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if todo.Title != "persisted" {
		t.Errorf("expected persisted todo, got %+v", todo)
	}
}
