// Package stub implements a local stand-in for the TODO service: the same
// wire surface, backed by SQLite and seeded with the service's sample data.
package stub

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// schema is the SQL schema for a new service double database.
const schema = `
CREATE TABLE IF NOT EXISTS todos (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id   INTEGER NOT NULL,
    title     TEXT NOT NULL,
    completed INTEGER NOT NULL DEFAULT 0 CHECK (completed IN (0, 1))
);

-- Index for listing a user's todos
CREATE INDEX IF NOT EXISTS idx_todos_user_id ON todos(user_id);
`

// ErrNotFound is returned when a todo does not exist.
var ErrNotFound = errors.New("todo not found")

// Todo is a task as stored and served by the double. Ids are numeric on the
// wire, as the real service sends them.
type Todo struct {
	UserID    int64  `json:"userId"`
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Store persists todos in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a store. The dsn can be a file path or ":memory:".
func NewStore(dsn string) (*Store, error) {
	connStr := dsn
	if !strings.Contains(dsn, "?") {
		connStr += "?"
	} else {
		connStr += "&"
	}
	connStr += "_busy_timeout=5000"

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across requests.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Seed inserts todos with their ids inside one transaction.
func (s *Store) Seed(todos []Todo) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO todos (id, user_id, title, completed) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare seed statement: %w", err)
	}
	defer stmt.Close()

	for _, t := range todos {
		if _, err := stmt.Exec(t.ID, t.UserID, t.Title, t.Completed); err != nil {
			return fmt.Errorf("failed to seed todo %d: %w", t.ID, err)
		}
	}

	return tx.Commit()
}

// List returns every todo ordered by id.
func (s *Store) List() ([]Todo, error) {
	rows, err := s.db.Query(`SELECT id, user_id, title, completed FROM todos ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []Todo{}
	for rows.Next() {
		var t Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Completed); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

// Get retrieves a todo by id.
func (s *Store) Get(id int64) (*Todo, error) {
	var t Todo
	err := s.db.QueryRow(`SELECT id, user_id, title, completed FROM todos WHERE id = ?`, id).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Completed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a todo and assigns it the next id.
func (s *Store) Create(t Todo) (*Todo, error) {
	res, err := s.db.Exec(`INSERT INTO todos (user_id, title, completed) VALUES (?, ?, ?)`,
		t.UserID, t.Title, t.Completed)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	t.ID = id
	return &t, nil
}

// Replace overwrites the todo with t.ID.
func (s *Store) Replace(t Todo) (*Todo, error) {
	res, err := s.db.Exec(`UPDATE todos SET user_id = ?, title = ?, completed = ? WHERE id = ?`,
		t.UserID, t.Title, t.Completed, t.ID)
	if err != nil {
		return nil, err
	}
	if err := requireOneRow(res); err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes a todo by id.
func (s *Store) Delete(id int64) error {
	res, err := s.db.Exec(`DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
