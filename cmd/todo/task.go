package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/todokata/todoapi/pkg/todoapi"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}
		handleError(runList(cmd.Context(), c, os.Stdout))
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}
		handleError(runGet(cmd.Context(), c, os.Stdout, args[0]))
	},
}

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}
		handleError(runDelete(cmd.Context(), c, os.Stdout, args[0]))
	},
}

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task",
	Long:  `Create a task. The service assigns the id.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		userID, _ := cmd.Flags().GetString("user")
		completed, _ := cmd.Flags().GetBool("completed")

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		task := todoapi.Task{UserID: userID, Title: args[0], Completed: completed}
		handleError(runAdd(cmd.Context(), c, os.Stdout, task))
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task",
	Long: `Update a task. The current task is fetched first and only the
fields given as flags are changed before it is written back.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var changes taskChanges
		if cmd.Flags().Changed("title") {
			title, _ := cmd.Flags().GetString("title")
			changes.title = &title
		}
		if cmd.Flags().Changed("user") {
			userID, _ := cmd.Flags().GetString("user")
			changes.userID = &userID
		}
		if cmd.Flags().Changed("completed") {
			completed, _ := cmd.Flags().GetBool("completed")
			changes.completed = &completed
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}
		handleError(runUpdate(cmd.Context(), c, os.Stdout, args[0], changes))
	},
}

func init() {
	rootCmd.AddCommand(listCmd, getCmd, rmCmd, addCmd, updateCmd)

	addCmd.Flags().String("user", "1", "Owning user id")
	addCmd.Flags().Bool("completed", false, "Create the task as completed")

	updateCmd.Flags().String("title", "", "New title")
	updateCmd.Flags().String("user", "", "New owning user id")
	updateCmd.Flags().Bool("completed", false, "Completion state")
}

// taskChanges holds the fields update was asked to change. Nil means keep.
type taskChanges struct {
	title     *string
	userID    *string
	completed *bool
}

func (ch taskChanges) empty() bool {
	return ch.title == nil && ch.userID == nil && ch.completed == nil
}

func (ch taskChanges) apply(task todoapi.Task) todoapi.Task {
	if ch.title != nil {
		task.Title = *ch.title
	}
	if ch.userID != nil {
		task.UserID = *ch.userID
	}
	if ch.completed != nil {
		task.Completed = *ch.completed
	}
	return task
}

func runList(ctx context.Context, c *todoapi.Client, w io.Writer) error {
	tasks, err := c.GetAllTasks(ctx)
	if err != nil {
		return err
	}
	printTaskList(w, tasks, jsonOutput)
	return nil
}

func runGet(ctx context.Context, c *todoapi.Client, w io.Writer, id string) error {
	task, err := c.GetTaskByID(ctx, id)
	if err != nil {
		return err
	}
	printTask(w, task, jsonOutput)
	return nil
}

func runDelete(ctx context.Context, c *todoapi.Client, w io.Writer, id string) error {
	if err := c.DeleteTaskByID(ctx, id); err != nil {
		return err
	}
	printSuccess(w, fmt.Sprintf("Deleted task %s", id), jsonOutput)
	return nil
}

func runAdd(ctx context.Context, c *todoapi.Client, w io.Writer, task todoapi.Task) error {
	created, err := c.AddTask(ctx, task)
	if err != nil {
		return err
	}
	printTask(w, created, jsonOutput)
	return nil
}

func runUpdate(ctx context.Context, c *todoapi.Client, w io.Writer, id string, changes taskChanges) error {
	if changes.empty() {
		return fmt.Errorf("nothing to update: pass --title, --user or --completed")
	}

	current, err := c.GetTaskByID(ctx, id)
	if err != nil {
		return err
	}

	next := changes.apply(current)
	next.ID = id

	updated, err := c.UpdateTask(ctx, next)
	if err != nil {
		return err
	}
	printTask(w, updated, jsonOutput)
	return nil
}
