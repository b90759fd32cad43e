package task

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbanx/internal/cli"
	"github.com/thenoetrevino/kanbanx/internal/cli/flags"
	"github.com/thenoetrevino/kanbanx/internal/models"
	taskservice "github.com/thenoetrevino/kanbanx/internal/services/task"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <status>",
		Short: "Move a task to another status",
		Long: `Move a task to a status and position. Only status and position change,
and no other task is renumbered.

Examples:
  # Move to the done column at the top
  kanbanx task move 1 done

  # Move to a specific position
  kanbanx task move 1 in_progress --position 3

  # JSON output for agents
  kanbanx task move 1 done --json
`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}

	cmd.Flags().Int("position", 0, "Target position")

	// Agent-friendly flags
	flags.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, quietMode := flags.NewFlagParser(cmd).OutputFormats()
	position, _ := cmd.Flags().GetInt("position")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	taskID, err := cli.ParseTaskID(args[0])
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "INVALID_TASK_ID", err.Error(),
			"Usage: kanbanx task move <id> <status>")
	}
	target := models.Status(strings.TrimSpace(args[1]))
	if target == "" {
		return formatter.Fail(cli.ExitValidation, "INVALID_STATUS", "status cannot be empty",
			"Valid board statuses are: todo, in_progress, done")
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

	err = cliInstance.App.TaskService.MoveTask(ctx, taskservice.MoveTaskRequest{
		TaskID:   taskID,
		Status:   target,
		Position: position,
	})
	if err != nil {
		return cli.TaskError(formatter, err, taskID)
	}

	// Output success
	if quietMode {
		fmt.Printf("%d\n", taskID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":     true,
			"task_id":     taskID,
			"from_status": current.Status,
			"to_status":   target,
			"position":    position,
		})
	}

	fmt.Printf("Task %d moved from '%s' to '%s' (position %d)\n", taskID, current.Status, target, position)
	if !target.IsCanonical() {
		fmt.Printf("  Note: '%s' is not a board column, the task will only appear in 'kanbanx task list'\n", target)
	}
	return nil
}
