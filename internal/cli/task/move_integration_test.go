package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanbanx/internal/cli"
	"github.com/thenoetrevino/kanbanx/internal/database"
	"github.com/thenoetrevino/kanbanx/internal/testutil"
	clitest "github.com/thenoetrevino/kanbanx/internal/testutil/cli"
)

func TestMoveTask(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	taskID := clitest.CreateTestTask(t, db, "Mover", "todo", 0)
	neighbour := clitest.CreateTestTask(t, db, "Neighbour", "done", 5)

	t.Run("Move to done at a position", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{
			itoa(taskID), "done", "--position", "5",
		})
		require.NoError(t, err)
		assert.Contains(t, output, "moved from 'todo' to 'done'")

		st := loadTask(t, db, taskID)
		assert.Equal(t, "done", st.status)
		assert.Equal(t, 5, st.position)
		assert.Equal(t, "Mover", st.title)

		// No renumbering
		assert.Equal(t, 5, loadTask(t, db, neighbour).position)
	})

	t.Run("JSON output reports both statuses", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{
			itoa(taskID), "in_progress", "--json",
		})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, "done", result["from_status"])
		assert.Equal(t, "in_progress", result["to_status"])
		assert.Equal(t, float64(0), result["position"])
	})

	t.Run("Non-board status is accepted with a note", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{itoa(taskID), "archived"})
		require.NoError(t, err)
		assert.Contains(t, output, "not a board column")
		assert.Equal(t, "archived", loadTask(t, db, taskID).status)
	})

	t.Run("updated_at changes, created_at does not", func(t *testing.T) {
		var createdBefore, updatedBefore string
		err := db.QueryRowContext(context.Background(),
			"SELECT created_at, updated_at FROM tasks WHERE id = ?", taskID).Scan(&createdBefore, &updatedBefore)
		require.NoError(t, err)

		_, err = clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{itoa(taskID), "todo", "--quiet"})
		require.NoError(t, err)

		var createdAfter, updatedAfter string
		err = db.QueryRowContext(context.Background(),
			"SELECT created_at, updated_at FROM tasks WHERE id = ?", taskID).Scan(&createdAfter, &updatedAfter)
		require.NoError(t, err)
		assert.Equal(t, createdBefore, createdAfter)

		before, err := time.Parse(database.TimestampLayout, updatedBefore)
		require.NoError(t, err)
		after, err := time.Parse(database.TimestampLayout, updatedAfter)
		require.NoError(t, err)
		assert.False(t, after.Before(before))
	})
}

func TestMoveTask_Negative(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	t.Run("Unknown ID", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"9999", "done"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("Empty status", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"1", " "})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})

	t.Run("Missing status argument", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"1"})
		assert.Error(t, err)
	})
}
