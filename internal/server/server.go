// Package server exposes the task store over HTTP and serves the board page.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/thenoetrevino/kanbanx/internal/config"
	taskservice "github.com/thenoetrevino/kanbanx/internal/services/task"
)

// Server represents the KanbanX HTTP server
type Server struct {
	cfg          config.ServerConfig
	echo         *echo.Echo
	tasks        taskservice.Service
	logger       *slog.Logger
	metrics      *Metrics
	shutdownOnce sync.Once
}

// NewServer creates a server with all routes and middleware registered
func NewServer(cfg config.ServerConfig, tasks taskservice.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		cfg:     cfg,
		echo:    e,
		tasks:   tasks,
		logger:  logger,
		metrics: NewMetrics(),
	}
	e.HTTPErrorHandler = s.handleError

	// Outermost first: the logger handles errors, so metrics see final statuses
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(s.metricsMiddleware)
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/", s.handleIndex)
	s.echo.Static("/static", s.cfg.StaticDir)

	api := s.echo.Group("/api")
	api.GET("/tasks", s.listTasks)
	api.POST("/tasks", s.createTask)
	api.GET("/tasks/:id", s.getTask)
	api.PUT("/tasks/:id", s.updateTask)
	api.DELETE("/tasks/:id", s.deleteTask)
	api.PATCH("/tasks/:id/move", s.moveTask)
	api.GET("/board", s.getBoard)
	api.GET("/health", s.health)
}

// Handler returns the HTTP handler serving every route
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Metrics returns the server's request counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// ListenerAddr returns the bound address once Start is listening, nil before
func (s *Server) ListenerAddr() string {
	addr := s.echo.ListenerAddr()
	if addr == nil {
		return ""
	}
	return addr.String()
}

// Start serves until ctx is cancelled or the listener fails.
// Cancellation triggers a graceful shutdown bounded by ShutdownTimeout.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("server starting", "address", s.cfg.Address(), "static_dir", s.cfg.StaticDir)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.echo.Start(s.cfg.Address())
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("server context cancelled, shutting down")
		return s.Shutdown()
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve on %s: %w", s.cfg.Address(), err)
	}
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown() error {
	var err error
	s.shutdownOnce.Do(func() {
		timeout := s.cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = config.DefaultShutdownTimeout
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if shutdownErr := s.echo.Shutdown(ctx); shutdownErr != nil {
			err = fmt.Errorf("failed to shut down server: %w", shutdownErr)
		}
		s.logger.Info("server stopped", "uptime", s.metrics.GetSnapshot().Uptime)
	})
	return err
}

func (s *Server) metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status, _ = statusFor(err)
		}
		s.metrics.ObserveStatus(status)

		return err
	}
}

func (s *Server) handleIndex(c echo.Context) error {
	return c.File(filepath.Join(s.cfg.StaticDir, "index.html"))
}
