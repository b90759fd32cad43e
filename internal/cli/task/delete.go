package task

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbanx/internal/cli"
	"github.com/thenoetrevino/kanbanx/internal/cli/flags"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long:  "Delete a task by ID (requires confirmation unless --force or --quiet).",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	flags.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, quietMode := flags.NewFlagParser(cmd).OutputFormats()
	force, _ := cmd.Flags().GetBool("force")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	taskID, err := cli.ParseTaskID(args[0])
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "INVALID_TASK_ID", err.Error(),
			"Usage: kanbanx task delete <id>")
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	// Get task details for confirmation
	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return cli.TaskError(formatter, err, taskID)
	}

	// Ask for confirmation unless force or quiet mode
	if !force && !quietMode {
		fmt.Printf("Delete task #%d: '%s'? (y/N): ", taskID, task.Title)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.TaskService.DeleteTask(ctx, taskID); err != nil {
		return cli.TaskError(formatter, err, taskID)
	}

	// Output success
	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"task_id": taskID,
		})
	}

	fmt.Printf("✓ Task %d deleted successfully\n", taskID)
	return nil
}
