package task

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbanx/internal/cli"
	"github.com/thenoetrevino/kanbanx/internal/cli/flags"
	"github.com/thenoetrevino/kanbanx/internal/cli/styles"
	"github.com/thenoetrevino/kanbanx/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Long:  "Display all details of a task, rendering the description as markdown.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	flags.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, quietMode := flags.NewFlagParser(cmd).OutputFormats()
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	taskID, err := cli.ParseTaskID(args[0])
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "INVALID_TASK_ID", err.Error(),
			"Usage: kanbanx task show <id>")
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return cli.TaskError(formatter, err, taskID)
	}

	// Output in appropriate format
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

	styles.Init(cliInstance.Config.Theme)
	fmt.Println(styles.RenderCard(renderTask(task)))
	return nil
}

// renderTask builds the body of the task card
func renderTask(task *models.Task) string {
	var content strings.Builder

	// Header
	content.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d: %s", task.ID, task.Title)))
	content.WriteString("\n\n")

	field := func(label, value string) {
		content.WriteString(fmt.Sprintf("%s %s\n",
			styles.LabelStyle.Render(label),
			styles.ValueStyle.Render(value),
		))
	}

	status := string(task.Status)
	if !task.Status.IsCanonical() {
		status += " (not on board)"
	}
	field("Status:", status)
	field("Position:", fmt.Sprintf("%d", task.Position))
	if task.Assignee != nil {
		field("Assignee:", *task.Assignee)
	}

	// Timestamps
	content.WriteString(fmt.Sprintf("%s %s\n",
		styles.LabelStyle.Render("Created:"),
		styles.SubtitleStyle.Render(task.CreatedAt.Local().Format("Jan 2, 2006 3:04 PM")),
	))
	content.WriteString(fmt.Sprintf("%s %s\n",
		styles.LabelStyle.Render("Updated:"),
		styles.SubtitleStyle.Render(task.UpdatedAt.Local().Format("Jan 2, 2006 3:04 PM")),
	))

	// Description
	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(styles.RenderMarkdown(task.DescriptionOrEmpty(), styles.CardWidth-6))

	return content.String()
}
