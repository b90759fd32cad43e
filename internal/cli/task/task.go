package task

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbanx/internal/cli"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}

// openCLI initializes the CLI or reports the failure through formatter
func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, nil, formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	closeFn := func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}
	return cliInstance, closeFn, nil
}
