package board

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbanx/internal/cli"
	"github.com/thenoetrevino/kanbanx/internal/cli/flags"
	"github.com/thenoetrevino/kanbanx/internal/cli/styles"
	"github.com/thenoetrevino/kanbanx/internal/models"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the board",
		Long: `Show the todo, in_progress and done columns side by side.

Tasks with any other status are not part of the board; use 'kanbanx task list'
to see them.`,
		Args: cobra.NoArgs,
		RunE: runBoard,
	}

	flags.AddOutputFlags(cmd, "Minimal output (task IDs per column)")

	return cmd
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, quietMode := flags.NewFlagParser(cmd).OutputFormats()
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	board, err := cliInstance.App.TaskService.GetBoard(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "BOARD_FETCH_ERROR", err.Error(), "")
	}

	if quietMode {
		for _, column := range models.BoardColumns {
			ids := make([]string, 0, len(board.Tasks(column)))
			for _, t := range board.Tasks(column) {
				ids = append(ids, fmt.Sprintf("%d", t.ID))
			}
			fmt.Printf("%s: %s\n", column, strings.Join(ids, " "))
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"board":   board,
		})
	}

	styles.Init(cliInstance.Config.Theme)
	fmt.Println(renderBoard(board))
	if board.Len() == 0 {
		fmt.Println("No tasks on the board. Add one with 'kanbanx task create --title ...'")
	}
	return nil
}

// renderBoard lays the three columns out horizontally
func renderBoard(board *models.Board) string {
	columns := make([]string, 0, len(models.BoardColumns))
	for _, column := range models.BoardColumns {
		columns = append(columns, renderColumn(column, board.Tasks(column)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func renderColumn(column models.BoardColumn, tasks []*models.Task) string {
	lines := []string{styles.ColumnHeader(column, len(tasks)), ""}
	if len(tasks) == 0 {
		lines = append(lines, styles.SubtitleStyle.Render("(empty)"))
	}
	for _, t := range tasks {
		lines = append(lines, styles.RenderTaskLine(t))
	}
	return styles.ColumnStyle(column).Render(strings.Join(lines, "\n"))
}
