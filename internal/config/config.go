package config

import (
	"fmt"

	"github.com/shortlabs/linkd/internal/shortener"
	"github.com/shortlabs/linkd/internal/validate"
)

// Storage driver names accepted by the server.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the application configuration
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Logging   LoggingConfig
	Shortener shortener.Config
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port    string
	BaseURL string
}

// StorageConfig holds storage-related configuration. Path is used by the
// sqlite driver, DSN by the postgres driver.
type StorageConfig struct {
	Driver string
	Path   string
	DSN    string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Verbose bool
}

// New creates a new config with the given parameters
func New(port, baseURL, driver, dbPath, dsn string, verbose bool, shortenerConfig shortener.Config) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    port,
			BaseURL: baseURL,
		},
		Storage: StorageConfig{
			Driver: driver,
			Path:   dbPath,
			DSN:    dsn,
		},
		Logging: LoggingConfig{
			Verbose: verbose,
		},
		Shortener: shortenerConfig,
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate validates the configuration values
func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if !validate.URL(c.Server.BaseURL) {
		return fmt.Errorf("base URL must be a valid http(s) URL, got: %q", c.Server.BaseURL)
	}

	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("database path cannot be empty for the sqlite driver")
		}
	case DriverPostgres:
		if c.Storage.DSN == "" {
			return fmt.Errorf("database DSN cannot be empty for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown storage driver: %q", c.Storage.Driver)
	}

	if c.Shortener.CodeLength != 0 {
		if c.Shortener.CodeLength < validate.MinCodeLength || c.Shortener.CodeLength > validate.MaxCodeLength {
			return fmt.Errorf("code length must be between %d and %d, got: %d",
				validate.MinCodeLength, validate.MaxCodeLength, c.Shortener.CodeLength)
		}
	}

	return nil
}
