package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/kanbanx/internal/app"
	"github.com/thenoetrevino/kanbanx/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	return db, app.New(db)
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, db *sql.DB, title, status string, position int) int64 {
	t.Helper()
	return testutil.CreateTestTask(t, db, title, status, position)
}
