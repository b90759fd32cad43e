package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Theme    ColorScheme    `yaml:"theme"`
}

// ServerConfig controls the HTTP listener and static assets
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	StaticDir       string        `yaml:"static_dir"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig controls the SQLite store
type DatabaseConfig struct {
	Path string `yaml:"path"`
	// SeedSampleData is a pointer so an explicit false survives applyDefaults
	SeedSampleData *bool `yaml:"seed_sample_data"`
}

// LoggingConfig controls the slog handler
type LoggingConfig struct {
	Level string `yaml:"level"`
	// File is appended to; empty means stderr
	File string `yaml:"file"`
}

// Defaults
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8000
	DefaultStaticDir       = "web/static"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultDatabasePath    = "kanban.db"
	DefaultLogLevel        = "info"
)

// Environment overrides
const (
	EnvHost      = "KANBANX_HOST"
	EnvPort      = "KANBANX_PORT"
	EnvDBPath    = "KANBANX_DB_PATH"
	EnvStaticDir = "KANBANX_STATIC_DIR"
	EnvLogLevel  = "KANBANX_LOG_LEVEL"
	EnvLogFile   = "KANBANX_LOG_FILE"
	EnvThemeFile = "KANBANX_THEME_FILE"
)

// Default returns a config with every field set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the config file at path, or the user config file when path is empty.
// A missing file is not an error: defaults are used.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = getConfigPath()
		if err != nil {
			// Can't determine a config path, run on defaults
			path = ""
		}
	}

	var config Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Fall through to defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	// Load theme from KANBANX_THEME_FILE if set
	loadThemeFile(&config)

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Address returns the host:port the server listens on
func (c *Config) Address() string {
	return c.Server.Address()
}

// Address returns the host:port the server listens on
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SeedSampleData reports whether an empty database gets the sample tasks
func (c *Config) SeedSampleData() bool {
	return c.Database.SeedSampleData == nil || *c.Database.SeedSampleData
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "kanbanx", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "kanbanx", "config.yaml"), nil
}

// applyEnv overrides file values with KANBANX_* environment variables
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvHost); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("invalid %s: %q", EnvPort, v)
		}
		c.Server.Port = port
	}
	if v := os.Getenv(EnvStaticDir); v != "" {
		c.Server.StaticDir = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
	return nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = DefaultStaticDir
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	c.Theme.ApplyDefaults()
}
