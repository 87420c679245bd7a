package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/todokata/todoapi/internal/stub"
	"github.com/todokata/todoapi/pkg/todoapi"
)

func newStubClient(t *testing.T) (*todoapi.Client, *stub.Server) {
	t.Helper()
	store, err := stub.NewSeededStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	srv := stub.New("", store, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	c, err := todoapi.NewClient(todoapi.WithBaseURL(ts.URL))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c, srv
}

func TestRunList(t *testing.T) {
	c, _ := newStubClient(t)
	var buf bytes.Buffer

	if err := runList(context.Background(), c, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "delectus aut autem") {
		t.Error("Output should contain the first seeded task")
	}
	if !strings.Contains(buf.String(), "200 tasks") {
		t.Error("Output should count all seeded tasks")
	}
}

func TestRunGet_NotFound(t *testing.T) {
	c, _ := newStubClient(t)
	var buf bytes.Buffer

	err := runGet(context.Background(), c, &buf, "9999")
	if got := mapErrorToExitCode(err); got != ExitTaskNotFound {
		t.Errorf("expected exit code %d, got %d (%v)", ExitTaskNotFound, got, err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output on failure, got %q", buf.String())
	}
}

func TestRunDelete(t *testing.T) {
	c, srv := newStubClient(t)
	var buf bytes.Buffer

	if err := runDelete(context.Background(), c, &buf, "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Deleted task 1") {
		t.Errorf("unexpected output %q", buf.String())
	}

	srv.SetFault(444)
	err := runDelete(context.Background(), c, &buf, "2")
	if got := mapErrorToExitCode(err); got != ExitUnknownStatus {
		t.Errorf("expected exit code %d, got %d (%v)", ExitUnknownStatus, got, err)
	}
}

func TestRunAddThenUpdate(t *testing.T) {
	c, _ := newStubClient(t)
	ctx := context.Background()
	var buf bytes.Buffer

	if err := runAdd(ctx, c, &buf, todoapi.Task{UserID: "3", Title: "Finish this kata"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "201") {
		t.Errorf("expected assigned id in output, got %q", buf.String())
	}

	done := true
	buf.Reset()
	if err := runUpdate(ctx, c, &buf, "201", taskChanges{completed: &done}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	task, err := c.GetTaskByID(ctx, "201")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := todoapi.Task{UserID: "3", ID: "201", Title: "Finish this kata", Completed: true}
	if task != want {
		t.Errorf("expected %+v, got %+v", want, task)
	}
}

func TestRunUpdate_NoChanges(t *testing.T) {
	c, _ := newStubClient(t)

	if err := runUpdate(context.Background(), c, &bytes.Buffer{}, "1", taskChanges{}); err == nil {
		t.Error("expected error when no fields change")
	}
}

func TestOpenStubStore_KeepsExistingFile(t *testing.T) {
	path := t.TempDir() + "/todos.db"

	store, err := openStubStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Delete(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.Close()

	reopened, err := openStubStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer reopened.Close()

	todos, err := reopened.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 199 {
		t.Errorf("expected reopened store to keep its 199 todos, got %d", len(todos))
	}
}
