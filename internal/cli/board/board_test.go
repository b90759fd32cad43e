package board

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kanbanapp "github.com/thenoetrevino/kanbanx/internal/app"
	"github.com/thenoetrevino/kanbanx/internal/testutil"
	clitest "github.com/thenoetrevino/kanbanx/internal/testutil/cli"
)

func TestBoard(t *testing.T) {
	db, app := clitest.SetupCLITest(t)

	first := clitest.CreateTestTask(t, db, "Plan", "todo", 0)
	second := clitest.CreateTestTask(t, db, "Review", "todo", 1)
	doing := clitest.CreateTestTask(t, db, "Build", "in_progress", 0)
	clitest.CreateTestTask(t, db, "Someday", "archived", 0)

	t.Run("Human output shows every column", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{})
		require.NoError(t, err)

		assert.Contains(t, output, "todo (2)")
		assert.Contains(t, output, "in_progress (1)")
		assert.Contains(t, output, "done (0)")
		assert.Contains(t, output, "(empty)")
		assert.Contains(t, output, "Plan")
		assert.NotContains(t, output, "Someday")
	})

	t.Run("Quiet output lists IDs per column", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"--quiet"})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(output), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "todo: "+itoa(first)+" "+itoa(second), lines[0])
		assert.Equal(t, "in_progress: "+itoa(doing), lines[1])
		assert.Equal(t, "done:", strings.TrimSpace(lines[2]))
	})

	t.Run("JSON output always carries three arrays", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"--json"})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])

		board := result["board"].(map[string]any)
		assert.Len(t, board["todo"], 2)
		assert.Len(t, board["in_progress"], 1)
		assert.Equal(t, []any{}, board["done"])
	})
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestBoard_SeededSampleTasks(t *testing.T) {
	db := testutil.SetupSeededTestDB(t)
	app := kanbanapp.New(db)

	output, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{})
	require.NoError(t, err)

	assert.Contains(t, output, "todo (2)")
	assert.Contains(t, output, "in_progress (1)")
	assert.Contains(t, output, "done (2)")
	assert.Contains(t, output, "@Alice")
	assert.NotContains(t, output, "No tasks on the board")
}

func TestBoard_EmptyHint(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{})
	require.NoError(t, err)
	assert.Contains(t, output, "No tasks on the board")
}
