// Package todoapi provides a Go client for a remote TODO-list REST service.
//
// The client issues one HTTP request per call, decodes JSON task records and
// reports every failure as an *Error drawn from a small closed set of kinds, so
// callers never inspect raw status codes or transport errors.
//
// # Getting Started
//
//	client, err := todoapi.NewClient()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Tasks
//
// List all tasks:
//
//	tasks, err := client.GetAllTasks(ctx)
//
// Get a single task:
//
//	task, err := client.GetTaskByID(ctx, "1")
//
// Delete a task:
//
//	err := client.DeleteTaskByID(ctx, "1")
//
// Create and replace tasks:
//
//	created, err := client.AddTask(ctx, todoapi.Task{UserID: "1", Title: "Finish this kata"})
//	updated, err := client.UpdateTask(ctx, created)
//
// # Asynchronous Calls
//
// Every operation has an Async variant returning a Future that is completed
// exactly once, at some point after the call returns:
//
//	f := client.GetAllTasksAsync(ctx)
//	// ...
//	tasks, err := f.Wait(ctx)
//
// # Error Handling
//
//	task, err := client.GetTaskByID(ctx, id)
//	switch {
//	case todoapi.IsItemNotFound(err):
//	    // 404
//	case todoapi.IsNetworkError(err):
//	    // no connectivity, timeout or a 5xx from the server
//	case todoapi.IsUnknownError(err):
//	    code, _ := todoapi.StatusCode(err)
//	case todoapi.IsDecodingError(err):
//	    // success status with a malformed body
//	}
//
// errors.Is also works against ErrNetwork, ErrItemNotFound, ErrUnknown and ErrDecoding.
//
// # Configuration Options
//
//	todoapi.WithBaseURL(url)        // Optional: service URL, for test doubles
//	todoapi.WithTimeout(duration)   // Optional: HTTP timeout (default: 30s)
//	todoapi.WithHTTPClient(client)  // Optional: custom *http.Client
//	todoapi.WithTransport(t)        // Optional: custom Transport
//	todoapi.WithLogger(logger)      // Optional: log every request
package todoapi
