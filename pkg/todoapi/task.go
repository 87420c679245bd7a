package todoapi

import (
	"context"
	"net/http"
)

// GetAllTasks lists every task. An empty collection is an empty slice, not an error.
func (c *Client) GetAllTasks(ctx context.Context) ([]Task, error) {
	outcome := c.transport.Do(ctx, c.newRequest(http.MethodGet, "/todos"))

	return Decode[[]Task](outcome, http.StatusOK)
}

// GetTaskByID retrieves a task by ID.
func (c *Client) GetTaskByID(ctx context.Context, id string) (Task, error) {
	outcome := c.transport.Do(ctx, c.newRequest(http.MethodGet, taskPath(id)))
	return Decode[Task](outcome, http.StatusOK)
}

// DeleteTaskByID deletes a task. Any body on the 200 response is ignored.
func (c *Client) DeleteTaskByID(ctx context.Context, id string) error {
	outcome := c.transport.Do(ctx, c.newRequest(http.MethodDelete, taskPath(id)))
	return DecodeEmpty(outcome, http.StatusOK)
}

// AddTask creates a task and returns it as stored by the service. task.ID is not sent.
func (c *Client) AddTask(ctx context.Context, task Task) (Task, error) {
	req, err := c.newJSONRequest(http.MethodPost, "/todos", taskRequest{
		UserID:    task.UserID,
		Title:     task.Title,
		Completed: task.Completed,
	})
	if err != nil {
		return Task{}, err
	}

	outcome := c.transport.Do(ctx, req)
	return Decode[Task](outcome, http.StatusCreated)
}

// UpdateTask replaces the task identified by task.ID.
func (c *Client) UpdateTask(ctx context.Context, task Task) (Task, error) {
	req, err := c.newJSONRequest(http.MethodPut, taskPath(task.ID), taskRequest(task))
	if err != nil {
		return Task{}, err
	}

	outcome := c.transport.Do(ctx, req)
	return Decode[Task](outcome, http.StatusOK)
}

// GetAllTasksAsync runs GetAllTasks in the background.
func (c *Client) GetAllTasksAsync(ctx context.Context) *Future[[]Task] {
	return goFuture(func() ([]Task, error) {
		return c.GetAllTasks(ctx)
	})
}

// GetTaskByIDAsync runs GetTaskByID in the background.
func (c *Client) GetTaskByIDAsync(ctx context.Context, id string) *Future[Task] {
	return goFuture(func() (Task, error) {
		return c.GetTaskByID(ctx, id)
	})
}

// DeleteTaskByIDAsync runs DeleteTaskByID in the background.
func (c *Client) DeleteTaskByIDAsync(ctx context.Context, id string) *Future[struct{}] {
	return goFuture(func() (struct{}, error) {
		return struct{}{}, c.DeleteTaskByID(ctx, id)
	})
}

// AddTaskAsync runs AddTask in the background.
func (c *Client) AddTaskAsync(ctx context.Context, task Task) *Future[Task] {
	return goFuture(func() (Task, error) {
		return c.AddTask(ctx, task)
	})
}

// UpdateTaskAsync runs UpdateTask in the background.
func (c *Client) UpdateTaskAsync(ctx context.Context, task Task) *Future[Task] {
	return goFuture(func() (Task, error) {
		return c.UpdateTask(ctx, task)
	})
}

// Ensure Client implements expected interface at compile time.
var _ interface {
	GetAllTasks(ctx context.Context) ([]Task, error)
	GetTaskByID(ctx context.Context, id string) (Task, error)
	DeleteTaskByID(ctx context.Context, id string) error
	AddTask(ctx context.Context, task Task) (Task, error)
	UpdateTask(ctx context.Context, task Task) (Task, error)
} = (*Client)(nil)
