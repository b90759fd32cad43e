package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/kanbanx/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database with the schema and no sample rows
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), Options{Path: MemoryPath})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile returns the path of a fresh database file under t.TempDir
func setupTestDBFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "data", "kanban.db")
}

// freezeClock pins nowFunc to the returned time for the rest of the test
func freezeClock(t *testing.T, at time.Time) time.Time {
	t.Helper()
	orig := nowFunc
	nowFunc = func() time.Time { return at }
	t.Cleanup(func() { nowFunc = orig })
	return at
}

// advanceClock moves a frozen clock forward
func advanceClock(t *testing.T, d time.Duration) {
	t.Helper()
	current := nowFunc()
	nowFunc = func() time.Time { return current.Add(d) }
}

// ============================================================================
// DATA HELPERS
// ============================================================================

func strp(s string) *string { return &s }

// createTestTask inserts a task through the repository and fails the test on error
func createTestTask(t *testing.T, repo *Repository, title string, status models.Status, position int) *models.Task {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), &models.Task{
		Title:    title,
		Status:   status,
		Position: position,
	})
	if err != nil {
		t.Fatalf("Failed to create task %q: %v", title, err)
	}
	return task
}
