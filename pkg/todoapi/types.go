package todoapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Task is one TODO item. ID and UserID are always strings here; the service
// may send them as JSON numbers or strings.
type Task struct {
	UserID    string `json:"userId"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// taskJSON is the wire form of a Task. Pointers record which fields were present.
type taskJSON struct {
	UserID    *flexibleID `json:"userId"`
	ID        *flexibleID `json:"id"`
	Title     *string     `json:"title"`
	Completed *bool       `json:"completed"`
}

// UnmarshalJSON accepts numeric or string ids. Every field is required and
// may not be null.
func (t *Task) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errors.New("task must be an object, got null")
	}

	var raw taskJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.UserID == nil:
		return missingField("userId")
	case raw.ID == nil:
		return missingField("id")
	case raw.Title == nil:
		return missingField("title")
	case raw.Completed == nil:
		return missingField("completed")
	}

	*t = Task{
		UserID:    string(*raw.UserID),
		ID:        string(*raw.ID),
		Title:     *raw.Title,
		Completed: *raw.Completed,
	}
	return nil
}

func missingField(name string) error {
	return fmt.Errorf("task is missing required field %q", name)
}

// flexibleID decodes a JSON string or integer into its string form.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("id must be a string or integer, got %s", data)
	}
	*f = flexibleID(strconv.FormatInt(n, 10))
	return nil
}

// taskRequest is the JSON request body for creating or replacing a task.
type taskRequest struct {
	UserID    string `json:"userId"`
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
