package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbanx/internal/cli"
	"github.com/thenoetrevino/kanbanx/internal/cli/flags"
	"github.com/thenoetrevino/kanbanx/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List all tasks ordered by status, then position. Tasks with any status are included.",
		RunE:  runList,
	}

	cmd.Flags().String("status", "", "Only list tasks with this status")

	// Agent-friendly flags
	flags.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	p := flags.NewFlagParser(cmd)

	jsonOutput, quietMode := p.OutputFormats()
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	status, err := p.ParseStatus("status")
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_STATUS", err.Error(), "")
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	tasks, err := cliInstance.App.TaskService.ListTasks(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "TASK_FETCH_ERROR", err.Error(), "")
	}
	if status != nil {
		tasks = filterByStatus(tasks, *status)
	}

	// Output in appropriate format
	if quietMode {
		// Just print IDs
		for _, t := range tasks {
			fmt.Printf("%d\n", t.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"tasks":   tasks,
		})
	}

	// Human-readable output
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Printf("Found %d tasks:\n\n", len(tasks))
	for _, t := range tasks {
		fmt.Printf("  [%d] %s (%s, position %d)\n", t.ID, t.Title, t.Status, t.Position)
	}

	return nil
}

func filterByStatus(tasks []*models.Task, status models.Status) []*models.Task {
	filtered := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == status {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
