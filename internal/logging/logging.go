package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/kanbanx/internal/config"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system from cfg.
// Logs go to cfg.File in append mode when set, stderr otherwise.
// Uses text format for human readability.
func Init(cfg config.LoggingConfig) error {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stderr
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return err
		}

		// Open log file in append mode
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		out = file
	}

	Logger = New(out, level)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same writer
	log.SetOutput(out)
	log.SetFlags(log.LstdFlags) // Include timestamp

	return nil
}

// New builds a text logger writing to w at the given level
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

// ParseLevel converts a config level name into a slog level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}
