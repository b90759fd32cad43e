package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/kanbanx/internal/app"
	"github.com/thenoetrevino/kanbanx/internal/config"
	"github.com/thenoetrevino/kanbanx/internal/database"
)

type contextKey string

const (
	appKey        contextKey = "app"
	configPathKey contextKey = "configPath"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// owned is true when the CLI opened the database itself and must close it
	owned bool
}

// WithApp returns a context carrying an already built app.
// GetCLIFromContext uses it instead of opening the configured database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfigPath returns a context carrying the --config flag value
func WithConfigPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, configPathKey, path)
}

// GetCLIFromContext returns a CLI backed by the app in ctx, or opens the configured database
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, _ := ctx.Value(configPathKey).(string)

	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		cfg, err := config.Load(configPath)
		if err != nil {
			cfg = config.Default()
		}
		return &CLI{App: a, Config: cfg}, nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(ctx, database.Options{
		Path:           cfg.Database.Path,
		SeedSampleData: cfg.SeedSampleData(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:    app.New(db),
		Config: cfg,
		owned:  true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
