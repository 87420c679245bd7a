package stub

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

// seedJSON is the sample data the public service serves: 200 todos across 10 users.
//
//go:embed seed/todos.json
var seedJSON []byte

// SeedTodos returns a fresh copy of the embedded sample todos.
func SeedTodos() ([]Todo, error) {
	var todos []Todo
	if err := json.Unmarshal(seedJSON, &todos); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}
	return todos, nil
}

// NewSeededStore opens a store and loads the sample todos into it.
func NewSeededStore(dsn string) (*Store, error) {
	store, err := NewStore(dsn)
	if err != nil {
		return nil, err
	}

	todos, err := SeedTodos()
	if err != nil {
		store.Close()
		return nil, err
	}
	if err := store.Seed(todos); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}
