package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbanx/internal/cli"
	"github.com/thenoetrevino/kanbanx/internal/cli/board"
	"github.com/thenoetrevino/kanbanx/internal/cli/task"
)

// NewRootCmd builds the kanbanx command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kanbanx",
		Short: "KanbanX - a single-board kanban task tracker",
		Long: `KanbanX tracks tasks on a single todo / in_progress / done board.

Run 'kanbanx serve' for the web board and JSON API, or use the task and board
commands to work on the same database from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configPath, _ := cmd.Flags().GetString("config")
			cmd.SetContext(cli.WithConfigPath(cmd.Context(), configPath))
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/kanbanx/config.yaml)")

	rootCmd.AddCommand(ServeCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(board.BoardCmd())

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
