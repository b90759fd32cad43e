package task

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbanx/internal/cli"
	"github.com/thenoetrevino/kanbanx/internal/cli/flags"
	taskservice "github.com/thenoetrevino/kanbanx/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task with specified attributes.

Examples:
  # Simple task (human-readable output)
  kanbanx task create --title="Fix bug"

  # JSON output for agents
  kanbanx task create --title="Fix bug" --json

  # Quiet mode for bash capture
  TASK_ID=$(kanbanx task create --title="Fix bug" --quiet)

  # Full example with all options
  kanbanx task create \
    --title="Add authentication" \
    --description="Implement login" \
    --status=in_progress \
    --assignee=alex \
    --position=2
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().String("status", "", "Status: todo, in_progress, done (default todo)")
	cmd.Flags().String("assignee", "", "Person responsible for the task")
	cmd.Flags().Int("position", 0, "Position within the column")

	// Agent-friendly flags
	flags.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	p := flags.NewFlagParser(cmd)

	jsonOutput, quietMode := p.OutputFormats()
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	title, _ := cmd.Flags().GetString("title")
	status, err := p.ParseStatus("status")
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_STATUS", err.Error(),
			"Valid board statuses are: todo, in_progress, done")
	}
	description, err := p.ParseStringOptional("description")
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "INVALID_FLAG", err.Error(), "")
	}
	if description != nil {
		text, err := cli.ReadDescription(*description, cmd.InOrStdin())
		if err != nil {
			return formatter.Fail(cli.ExitCode(err), "STDIN_READ_ERROR", err.Error(), "")
		}
		description = &text
	}
	assignee, err := p.ParseStringOptional("assignee")
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "INVALID_FLAG", err.Error(), "")
	}
	position, _, err := p.ParseIntOptional("position")
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "INVALID_FLAG", err.Error(), "")
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	task, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:       title,
		Description: description,
		Status:      status,
		Assignee:    assignee,
		Position:    position,
	})
	if err != nil {
		return cli.TaskError(formatter, err, 0)
	}

	// Output based on mode (JSON/Quiet/Human)
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

	// Human-readable output
	fmt.Printf("✓ Task '%s' created successfully (ID: %d)\n", task.Title, task.ID)
	fmt.Printf("  Status: %s\n", task.Status)
	fmt.Printf("  Position: %d\n", task.Position)
	if task.Assignee != nil {
		fmt.Printf("  Assignee: %s\n", *task.Assignee)
	}

	return nil
}
