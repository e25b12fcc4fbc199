package task

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/felixgeelhaar/tasklet/adapter/cli"
	"github.com/felixgeelhaar/tasklet/internal/tasks/store"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [task-number]",
	Short: "Delete a task",
	Long: `Delete a task by its list position.

Deleting a task shifts the numbers of all later tasks down by one, so
re-run "tasklet task list" before deleting another.

Examples:
  tasklet task delete 3`,
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Store == nil {
			return fmt.Errorf("application not initialized - task storage required")
		}

		position, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid task number %q", args[0])
		}

		t, err := app.Store.Delete(cmd.Context(), position)
		if err != nil {
			if errors.Is(err, store.ErrInvalidTaskNumber) {
				return fmt.Errorf("invalid task number %d: the list has %d task(s)", position, app.Store.Len())
			}
			return fmt.Errorf("failed to delete task: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted task: %s\n", t.Render())
		return nil
	},
}
