package task

import (
	"fmt"

	"github.com/felixgeelhaar/tasklet/adapter/cli"
	"github.com/felixgeelhaar/tasklet/internal/tasks/domain/value_objects"
	"github.com/spf13/cobra"
)

var (
	showCompleted  bool
	filterPriority string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks with optional filtering.

Tasks are numbered by their position in the list; those numbers are the
arguments for the complete and delete commands. Completed tasks are
hidden unless --completed is given.

Examples:
  tasklet task list                    # Pending tasks
  tasklet task list --completed        # Include completed tasks
  tasklet task list --priority high    # Only high-priority tasks`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Store == nil {
			return fmt.Errorf("application not initialized - task storage required")
		}

		var priorityFilter *value_objects.Priority
		if filterPriority != "" {
			p, err := value_objects.ParsePriority(filterPriority)
			if err != nil {
				return fmt.Errorf("invalid priority (use high, medium, low or 1-3): %w", err)
			}
			priorityFilter = &p
		}

		out := cmd.OutOrStdout()
		shown := 0
		for position, t := range app.Store.List(showCompleted, priorityFilter) {
			fmt.Fprintf(out, "%d. %s\n", position, t.Render())
			shown++
		}

		if shown == 0 {
			fmt.Fprintln(out, "No tasks found. Add some tasks to get started!")
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVarP(&showCompleted, "completed", "c", false, "show completed tasks as well")
	listCmd.Flags().StringVarP(&filterPriority, "priority", "p", "", "filter by priority (high, medium, low or 1-3)")
}
