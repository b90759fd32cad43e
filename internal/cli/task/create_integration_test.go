package task

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanbanx/internal/cli"
	clitest "github.com/thenoetrevino/kanbanx/internal/testutil/cli"
)

func TestCreateTask_Positive(t *testing.T) {
	db, app := clitest.SetupCLITest(t)

	t.Run("Create with title only", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Fix bug",
		})

		require.NoError(t, err)
		assert.Contains(t, output, "Task 'Fix bug' created successfully")
		assert.Contains(t, output, "Status: todo")
	})

	t.Run("Create with quiet flag prints only the ID", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Quiet task", "--quiet",
		})

		require.NoError(t, err)
		id := strings.TrimSpace(output)
		assert.Regexp(t, `^\d+$`, id)
	})

	t.Run("Create with all fields and json flag", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Add login",
			"--description", "Use sessions",
			"--status", "in_progress",
			"--assignee", "alex",
			"--position", "2",
			"--json",
		})
		require.NoError(t, err)

		var result struct {
			Success bool `json:"success"`
			Task    struct {
				ID          int64   `json:"id"`
				Title       string  `json:"title"`
				Description *string `json:"description"`
				Status      string  `json:"status"`
				Assignee    *string `json:"assignee"`
				Position    int     `json:"position"`
			} `json:"task"`
		}
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(output)), &result), output)

		assert.True(t, result.Success)
		assert.Equal(t, "Add login", result.Task.Title)
		assert.Equal(t, "in_progress", result.Task.Status)
		assert.Equal(t, 2, result.Task.Position)
		require.NotNil(t, result.Task.Description)
		assert.Equal(t, "Use sessions", *result.Task.Description)
		require.NotNil(t, result.Task.Assignee)
		assert.Equal(t, "alex", *result.Task.Assignee)

		var count int
		err = db.QueryRowContext(context.Background(),
			"SELECT COUNT(*) FROM tasks WHERE title = ? AND assignee = ?", "Add login", "alex").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Create reads description from stdin", func(t *testing.T) {
		cmd := CreateCmd()
		cmd.SetIn(strings.NewReader("from **stdin**"))

		output, err := clitest.ExecuteCLICommand(t, app, cmd, []string{
			"--title", "Piped", "--description", "-", "--quiet",
		})
		require.NoError(t, err)

		var description string
		err = db.QueryRowContext(context.Background(),
			"SELECT description FROM tasks WHERE id = ?", strings.TrimSpace(output)).Scan(&description)
		require.NoError(t, err)
		assert.Equal(t, "from **stdin**", description)
	})
}

func TestCreateTask_Negative(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	t.Run("Missing title flag", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("Blank title is a validation error", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "   ", "--json",
		})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
		assert.Contains(t, output, "INVALID_TITLE")
	})
}
