package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/kanbanx/internal/database"
)

// SetupTestDB creates an in-memory database with the full schema and no sample data
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.Options{Path: database.MemoryPath})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// SetupSeededTestDB creates an in-memory database holding the sample tasks
func SetupSeededTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.Options{
		Path:           database.MemoryPath,
		SeedSampleData: true,
	})
	if err != nil {
		t.Fatalf("Failed to create seeded test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// CreateTestTask inserts a task directly and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, title, status string, position int) int64 {
	t.Helper()
	now := time.Now().UTC().Format(database.TimestampLayout)
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO tasks (title, status, position, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		title, status, position, now, now)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	taskID, _ := result.LastInsertId()
	return taskID
}

// CountTasks returns the number of rows with the given ID
func CountTasks(t *testing.T, db *sql.DB, taskID int64) int {
	t.Helper()
	var count int
	err := db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM tasks WHERE id = ?", taskID).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count tasks: %v", err)
	}
	return count
}
