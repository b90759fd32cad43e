package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbanx/internal/app"
	"github.com/thenoetrevino/kanbanx/internal/config"
	"github.com/thenoetrevino/kanbanx/internal/database"
	"github.com/thenoetrevino/kanbanx/internal/logging"
	"github.com/thenoetrevino/kanbanx/internal/server"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Serve the board page and the JSON API.

Flags override the config file and KANBANX_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("host", "", "Interface to listen on")
	cmd.Flags().Int("port", 0, "Port to listen on")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host, _ = cmd.Flags().GetString("host")
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}

	if err := logging.Init(cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		cmd.Context(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	return serve(ctx, cfg)
}

// serve runs the server until ctx is cancelled
func serve(ctx context.Context, cfg *config.Config) error {
	// Migrations are not interrupted by shutdown signals
	db, err := database.InitDB(context.WithoutCancel(ctx), database.Options{
		Path:           cfg.Database.Path,
		SeedSampleData: cfg.SeedSampleData(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db, app.WithLogger(logging.Logger))
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	srv := server.NewServer(cfg.Server, application.TaskService, application.Logger())

	slog.Info("kanbanx server starting",
		"address", cfg.Address(),
		"database", cfg.Database.Path,
		"pid", os.Getpid(),
	)

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	snapshot := srv.Metrics().GetSnapshot()
	slog.Info("kanbanx server shut down gracefully",
		"requests_total", snapshot.RequestsTotal,
		"task_mutations", snapshot.TaskMutations,
	)
	return nil
}
