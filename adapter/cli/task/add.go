package task

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/tasklet/adapter/cli"
	taskdomain "github.com/felixgeelhaar/tasklet/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tasklet/internal/tasks/domain/value_objects"
	"github.com/spf13/cobra"
)

var (
	addPriority string
	addDueDate  string
)

var addCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Add a new task",
	Long: `Add a new task with a description and optional properties.

Examples:
  tasklet task add "Buy milk"
  tasklet task add "Review PR" -p high
  tasklet task add "File taxes" --due 2024-04-15 --priority 1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Store == nil {
			return fmt.Errorf("application not initialized - task storage required")
		}

		description := args[0]

		priority := value_objects.PriorityMedium
		if addPriority != "" {
			p, err := value_objects.ParsePriority(addPriority)
			if err != nil {
				return fmt.Errorf("invalid priority (use high, medium, low or 1-3): %w", err)
			}
			priority = p
		}

		var dueDate *time.Time
		if addDueDate != "" {
			parsed, err := time.Parse(taskdomain.DueDateLayout, addDueDate)
			if err != nil {
				return fmt.Errorf("invalid due date format (use YYYY-MM-DD): %w", err)
			}
			dueDate = &parsed
		}

		t, err := app.Store.Add(cmd.Context(), description, dueDate, priority)
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added task: %s\n", t.Render())
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "task priority (high, medium, low or 1-3)")
	addCmd.Flags().StringVar(&addDueDate, "due", "", "due date (YYYY-MM-DD)")
}
