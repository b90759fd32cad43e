package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbanx/internal/cli"
	"github.com/thenoetrevino/kanbanx/internal/cli/flags"
	taskservice "github.com/thenoetrevino/kanbanx/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Long: `Update a task's fields. Only the flags you pass change; the rest keep their current values.
Pass an empty --description or --assignee to clear it.

Examples:
  kanbanx task update 3 --title="Fix login bug"
  kanbanx task update 3 --assignee="" --status=done
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	cmd.Flags().String("status", "", "New status")
	cmd.Flags().String("assignee", "", "New assignee")
	cmd.Flags().Int("position", 0, "New position")

	flags.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	p := flags.NewFlagParser(cmd)

	jsonOutput, quietMode := p.OutputFormats()
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	taskID, err := cli.ParseTaskID(args[0])
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "INVALID_TASK_ID", err.Error(),
			"Usage: kanbanx task update <id> [flags]")
	}

	if !p.Changed("title") && !p.Changed("description") && !p.Changed("status") &&
		!p.Changed("assignee") && !p.Changed("position") {
		return formatter.Fail(cli.ExitUsage, "NO_UPDATES", "no fields to update",
			"Pass at least one of --title, --description, --status, --assignee, --position")
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	current, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return cli.TaskError(formatter, err, taskID)
	}

	// Start from the stored task so the full replace only changes what was passed
	req := taskservice.UpdateTaskRequest{
		TaskID:      taskID,
		Title:       current.Title,
		Description: current.Description,
		Status:      &current.Status,
		Assignee:    current.Assignee,
		Position:    current.Position,
	}

	if p.Changed("title") {
		req.Title, _ = cmd.Flags().GetString("title")
	}
	if p.Changed("status") {
		status, err := p.ParseStatus("status")
		if err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_STATUS", err.Error(), "")
		}
		req.Status = status
	}
	if p.Changed("description") {
		value, _ := cmd.Flags().GetString("description")
		text, err := cli.ReadDescription(value, cmd.InOrStdin())
		if err != nil {
			return formatter.Fail(cli.ExitCode(err), "STDIN_READ_ERROR", err.Error(), "")
		}
		req.Description = clearable(text)
	}
	if p.Changed("assignee") {
		value, _ := cmd.Flags().GetString("assignee")
		req.Assignee = clearable(value)
	}
	if p.Changed("position") {
		req.Position, _ = cmd.Flags().GetInt("position")
	}

	task, err := cliInstance.App.TaskService.UpdateTask(ctx, req)
	if err != nil {
		return cli.TaskError(formatter, err, taskID)
	}

	if quietMode {
		fmt.Printf("%d\n", task.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"task":    task,
		})
	}

	fmt.Printf("✓ Task %d updated successfully\n", task.ID)
	return nil
}

// clearable maps an empty flag value to nil so the field is stored as null
func clearable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
