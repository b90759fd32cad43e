package database

import (
	"context"
	"database/sql"
	"log/slog"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// status is free text on purpose: unknown values are stored and simply
	// left off the board
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			status TEXT NOT NULL DEFAULT 'todo',
			assignee TEXT,
			position INTEGER DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_tasks_status_position
		ON tasks(status, position)
	`)
	return err
}

// sampleTask is one row of the first-run board
type sampleTask struct {
	title       string
	description string
	status      string
	assignee    *string
	position    int
}

func strPtr(s string) *string { return &s }

var sampleTasks = []sampleTask{
	{"Setup project structure", "Initialize the basic FastAPI project", "done", strPtr("Alice"), 0},
	{"Create task model", "Define the Task data model", "done", strPtr("Bob"), 1},
	{"Implement drag and drop", "Add drag and drop functionality to frontend", "in_progress", strPtr("Alice"), 0},
	{"Add user authentication", "Implement basic user auth system", "todo", nil, 0},
	{"Write tests", "Create unit and integration tests", "todo", strPtr("Charlie"), 1},
}

// seedSampleTasks inserts the sample tasks if the tasks table is empty
func seedSampleTasks(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks").Scan(&count); err != nil {
		return err
	}

	// If tasks exist, don't seed
	if count > 0 {
		return nil
	}

	now := formatTimestamp(nowFunc())
	for _, st := range sampleTasks {
		_, err := db.ExecContext(ctx,
			`INSERT INTO tasks (title, description, status, assignee, position, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			st.title, st.description, st.status, ptrToNullString(st.assignee), st.position, now, now,
		)
		if err != nil {
			return err
		}
	}

	slog.Info("seeded sample tasks", "count", len(sampleTasks))
	return nil
}
