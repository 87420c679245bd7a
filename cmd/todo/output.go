package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/todokata/todoapi/pkg/todoapi"
)

// printTask prints a single task to the writer
func printTask(w io.Writer, task todoapi.Task, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(task)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", task.ID)
	fmt.Fprintf(tw, "User:\t%s\n", task.UserID)
	fmt.Fprintf(tw, "Title:\t%s\n", task.Title)
	fmt.Fprintf(tw, "Completed:\t%s\n", checkmark(task.Completed))
	tw.Flush()
}

// printTaskList prints tasks as a table
func printTaskList(w io.Writer, tasks []todoapi.Task, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(tasks)
		return
	}

	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tUSER\tDONE\tTITLE\n")
	fmt.Fprintf(tw, "--\t----\t----\t-----\n")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			task.ID, task.UserID, checkmark(task.Completed), truncate(task.Title, 50))
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%d tasks\n", len(tasks))
}

// printError prints an error message
func printError(w io.Writer, err error, jsonOutput bool) {
	if jsonOutput {
		body := map[string]interface{}{
			"message": err.Error(),
		}
		if code, ok := todoapi.StatusCode(err); ok {
			body["status"] = code
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]interface{}{"error": body})
		return
	}

	fmt.Fprintf(w, "Error: %s\n", err.Error())
}

// printSuccess prints a success message
func printSuccess(w io.Writer, message string, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]interface{}{
			"message": message,
		})
		return
	}

	fmt.Fprintln(w, message)
}

func checkmark(done bool) string {
	if done {
		return "yes"
	}
	return "no"
}

// truncate truncates a string to the specified length
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
