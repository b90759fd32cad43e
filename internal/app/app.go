package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/kanbanx/internal/database"
	taskservice "github.com/thenoetrevino/kanbanx/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db *sql.DB

	// Repository layer (direct database access)
	repo database.DataStore

	logger *slog.Logger

	// Service layer (business logic)
	TaskService taskservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	repo := database.NewRepository(db)

	return &App{
		db:          db,
		repo:        repo,
		logger:      cfg.logger,
		TaskService: taskservice.NewService(repo),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Logger returns the logger the application was built with
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the database handle
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
