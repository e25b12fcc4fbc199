package task

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/felixgeelhaar/tasklet/adapter/cli"
	"github.com/felixgeelhaar/tasklet/internal/tasks/store"
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete [task-number]",
	Short: "Mark a task as completed",
	Long: `Mark a task as completed by its list position.

Examples:
  tasklet task complete 2`,
	Aliases: []string{"done"},
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

		t, err := app.Store.Complete(cmd.Context(), position)
		if err != nil {
			if errors.Is(err, store.ErrInvalidTaskNumber) {
				return fmt.Errorf("invalid task number %d: the list has %d task(s)", position, app.Store.Len())
			}
			return fmt.Errorf("failed to complete task: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Marked task as completed: %s\n", t.Render())
		return nil
	},
}
