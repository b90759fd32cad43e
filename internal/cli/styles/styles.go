package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanbanx/internal/config"
	"github.com/thenoetrevino/kanbanx/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Board column width, borders included
	ColumnWidth = 32

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:", "Assignee:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	// Border color per board column
	columnBorders map[models.BoardColumn]string
	subtleColor   string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	colors.ApplyDefaults()

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

	columnBorders = map[models.BoardColumn]string{
		models.ColumnTodo:       colors.TodoBorder,
		models.ColumnInProgress: colors.InProgressBorder,
		models.ColumnDone:       colors.DoneBorder,
	}
	subtleColor = colors.Subtle
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// ColumnStyle returns the bordered box style for a board column
func ColumnStyle(column models.BoardColumn) lipgloss.Style {
	border, ok := columnBorders[column]
	if !ok {
		border = subtleColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(ColumnWidth)
}

// ColumnHeader renders "<name> (<count>)" in the column's border color
func ColumnHeader(column models.BoardColumn, count int) string {
	border, ok := columnBorders[column]
	if !ok {
		border = subtleColor
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(border)).
		Render(fmt.Sprintf("%s (%d)", column, count))
}

// RenderTaskLine renders a task as "#id title" with a muted assignee suffix
// Format: "#3 Write docs @sam"
func RenderTaskLine(task *models.Task) string {
	line := ValueStyle.Render(fmt.Sprintf("#%d %s", task.ID, task.Title))
	if assignee := task.AssigneeOrEmpty(); assignee != "" {
		line += " " + SubtitleStyle.Render("@"+assignee)
	}
	return line
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
