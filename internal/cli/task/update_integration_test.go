package task

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanbanx/internal/cli"
	clitest "github.com/thenoetrevino/kanbanx/internal/testutil/cli"
)

type storedTask struct {
	title       string
	description sql.NullString
	status      string
	assignee    sql.NullString
	position    int
}

func loadTask(t *testing.T, db *sql.DB, id int64) storedTask {
	t.Helper()
	var st storedTask
	err := db.QueryRowContext(context.Background(),
		"SELECT title, description, status, assignee, position FROM tasks WHERE id = ?", id).
		Scan(&st.title, &st.description, &st.status, &st.assignee, &st.position)
	require.NoError(t, err)
	return st
}

func TestUpdateTask(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	taskID := clitest.CreateTestTask(t, db, "Original", "todo", 0)
	_, err := db.ExecContext(context.Background(),
		"UPDATE tasks SET assignee = ?, description = ? WHERE id = ?", "kim", "notes", taskID)
	require.NoError(t, err)

	t.Run("Only passed flags change", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{
			itoa(taskID), "--title", "Renamed", "--position", "4",
		})
		require.NoError(t, err)
		assert.Contains(t, output, "updated successfully")

		st := loadTask(t, db, taskID)
		assert.Equal(t, "Renamed", st.title)
		assert.Equal(t, 4, st.position)
		assert.Equal(t, "todo", st.status)
		assert.Equal(t, "kim", st.assignee.String)
		assert.Equal(t, "notes", st.description.String)
	})

	t.Run("Empty assignee clears it", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{
			itoa(taskID), "--assignee", "", "--status", "done",
		})
		require.NoError(t, err)

		st := loadTask(t, db, taskID)
		assert.False(t, st.assignee.Valid)
		assert.Equal(t, "done", st.status)
	})
}

func TestUpdateTask_Negative(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	taskID := clitest.CreateTestTask(t, db, "Keep", "todo", 0)

	t.Run("No flags", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{itoa(taskID)})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("Unknown ID", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{"9999", "--title", "x"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("Blank title", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{itoa(taskID), "--title", " "})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
		assert.Equal(t, "Keep", loadTask(t, db, taskID).title)
	})
}
