// Package config provides centralized configuration management for the application.
// It loads configuration from an optional YAML file and environment variables
// with sensible defaults, and validates all settings on startup to fail fast
// on misconfiguration.
package config

import (
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Dirs     DirsConfig     `yaml:"dirs"`
	Parser   ParserConfig   `yaml:"parser"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Runs     RunConfig      `yaml:"runs"`
	Security SecurityConfig `yaml:"security"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DirsConfig holds the batch directories. Relative paths resolve under Root.
type DirsConfig struct {
	// Root is the base directory for relative paths (default: .)
	Root string `yaml:"root" env:"FECPARSE_ROOT" default:"."`

	// Import holds the filings waiting to be processed (default: Import)
	Import string `yaml:"import" env:"FECPARSE_IMPORT_DIR" default:"Import"`

	// Processed receives accepted filings (default: Processed)
	Processed string `yaml:"processed" env:"FECPARSE_PROCESSED_DIR" default:"Processed"`

	// Output receives the flat layout files (default: Output)
	Output string `yaml:"output" env:"FECPARSE_OUTPUT_DIR" default:"Output"`

	// Review receives rejected filings and the review file (default: Review)
	Review string `yaml:"review" env:"FECPARSE_REVIEW_DIR" default:"Review"`
}

// ParserConfig holds input decoding settings.
type ParserConfig struct {
	// Encoding is the source encoding: windows-1252, latin1 or utf-8 (default: windows-1252)
	Encoding string `yaml:"encoding" env:"FECPARSE_ENCODING" default:"windows-1252"`

	// Extension selects the files picked up from the import dir (default: .fec)
	Extension string `yaml:"extension" env:"FECPARSE_EXTENSION" default:".fec"`

	// MaxFileSize is the largest filing accepted, in bytes (default: 256MB)
	MaxFileSize int64 `yaml:"max_file_size" env:"FECPARSE_MAX_FILE_SIZE" default:"268435456"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	// Enabled switches the sinks from flat files to Postgres (default: false)
	Enabled bool `yaml:"enabled" env:"FECPARSE_USE_DATABASE" default:"false"`

	// URL is the PostgreSQL connection string (required when Enabled)
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	URL string `yaml:"url" env:"DATABASE_URL" envAlt:"DB_URL"`

	// MaxConns is the maximum number of connections in the pool (default: 10)
	MaxConns int `yaml:"max_conns" env:"DB_MAX_CONNS" default:"10"`

	// MinConns is the minimum number of connections to keep open (default: 1)
	MinConns int `yaml:"min_conns" env:"DB_MIN_CONNS" default:"1"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime is the maximum idle time before a connection is closed (default: 30m)
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 127.0.0.1)
	Host string `yaml:"host" env:"SERVER_HOST" default:"127.0.0.1"`

	// Port is the port to listen on (default: 8080)
	Port int `yaml:"port" env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"15s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `yaml:"request_timeout" env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// RunConfig holds batch run settings.
type RunConfig struct {
	// Timeout bounds a single batch run (default: 30m)
	Timeout time.Duration `yaml:"timeout" env:"FECPARSE_RUN_TIMEOUT" default:"30m"`

	// ScanInterval triggers a run periodically in serve mode; 0 disables it (default: 0s)
	ScanInterval time.Duration `yaml:"scan_interval" env:"FECPARSE_SCAN_INTERVAL" default:"0s"`

	// HistorySize is the number of finished runs kept in memory (default: 50)
	HistorySize int `yaml:"history_size" env:"FECPARSE_RUN_HISTORY" default:"50"`
}

// SecurityConfig holds HTTP access settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `yaml:"trusted_proxies" env:"TRUSTED_PROXIES"`

	// RequireAPIKey rejects API requests without a valid X-API-Key (default: false)
	RequireAPIKey bool `yaml:"require_api_key" env:"REQUIRE_API_KEY" default:"false"`

	// APIKeys is a comma-separated list of accepted API keys
	APIKeys []string `yaml:"api_keys" env:"API_KEYS"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `yaml:"level" env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `yaml:"format" env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// ImportDir returns the resolved import directory.
func (c *DirsConfig) ImportDir() string { return c.resolve(c.Import) }

// ProcessedDir returns the resolved processed directory.
func (c *DirsConfig) ProcessedDir() string { return c.resolve(c.Processed) }

// OutputDir returns the resolved output directory.
func (c *DirsConfig) OutputDir() string { return c.resolve(c.Output) }

// ReviewDir returns the resolved review directory.
func (c *DirsConfig) ReviewDir() string { return c.resolve(c.Review) }

func (c *DirsConfig) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(c.Root, dir)
}
