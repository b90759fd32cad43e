// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Options controls how InitDB opens the store
type Options struct {
	// Path is the SQLite file, or MemoryPath
	Path string
	// SeedSampleData inserts the sample tasks when the table is empty
	SeedSampleData bool
}

func InitDB(ctx context.Context, opts Options) (*sql.DB, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("database path is empty")
	}

	if opts.Path != MemoryPath {
		if dir := filepath.Dir(opts.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps :memory: databases alive and serialises writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	// Enable WAL mode for better concurrency
	_, err = db.ExecContext(ctx, "PRAGMA journal_mode = WAL")
	if err != nil {
		slog.Error("Failed to enable WAL mode", "error", err)
		closeDB(db)
		return nil, err
	}

	// Set busy timeout to 5 seconds (SQLite will retry for this duration)
	_, err = db.ExecContext(ctx, "PRAGMA busy_timeout = 5000")
	if err != nil {
		slog.Error("Failed to set busy timeout", "error", err)
		closeDB(db)
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if opts.SeedSampleData {
		if err := seedSampleTasks(ctx, db); err != nil {
			closeDB(db)
			return nil, fmt.Errorf("failed to seed sample tasks: %w", err)
		}
	}

	return db, nil
}

func closeDB(db *sql.DB) {
	if closeErr := db.Close(); closeErr != nil {
		slog.Error("error closing db", "error", closeErr)
	}
}
