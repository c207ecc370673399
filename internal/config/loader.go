package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileEnv names the environment variable holding the optional YAML config path.
const FileEnv = "FECPARSE_CONFIG"

// Load reads configuration in three layers: struct tag defaults, the YAML
// file named by FECPARSE_CONFIG (if any), then environment variables.
// Returns an error if a value cannot be parsed or validation fails.
func Load() (*Config, error) {
	return LoadFile(os.Getenv(FileEnv))
}

// LoadFile is Load with an explicit YAML path. An empty path skips the file.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	if err := loadStruct(reflect.ValueOf(cfg).Elem(), defaultSource); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := loadStruct(reflect.ValueOf(cfg).Elem(), envSource); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration and panics on error.
// Use this only in main() where early termination is desired.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}

// source returns the raw value for a field and the name used in errors.
// An empty value leaves the field unchanged.
type source func(field reflect.StructField) (name, value string)

func defaultSource(field reflect.StructField) (string, string) {
	return field.Tag.Get("env") + " default", field.Tag.Get("default")
}

func envSource(field reflect.StructField) (string, string) {
	envName := field.Tag.Get("env")
	if envName == "" {
		return "", ""
	}

	// Try primary env var, then alternate
	value := os.Getenv(envName)
	if value == "" {
		if alt := field.Tag.Get("envAlt"); alt != "" {
			value = os.Getenv(alt)
		}
	}
	return envName, value
}

// loadStruct recursively populates struct fields from a source.
func loadStruct(v reflect.Value, src source) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		// Skip unexported fields
		if !fieldVal.CanSet() {
			continue
		}

		// Recurse into nested structs
		if field.Type.Kind() == reflect.Struct && field.Type != reflect.TypeOf(time.Time{}) {
			if err := loadStruct(fieldVal, src); err != nil {
				return err
			}
			continue
		}

		name, value := src(field)
		if value == "" {
			continue
		}

		if err := setField(fieldVal, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", name, value, err)
		}
	}

	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int64:
		// Handle time.Duration specially
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}
			field.Set(reflect.ValueOf(d))
		} else {
			i, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer: %w", err)
			}
			field.SetInt(i)
		}

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type: %s", field.Type().Elem().Kind())
		}
		// Split comma-separated values, trim whitespace
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				result = append(result, p)
			}
		}
		field.Set(reflect.ValueOf(result))

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// supportedEncodings lists the accepted Parser.Encoding values.
var supportedEncodings = map[string]bool{
	"windows-1252": true,
	"cp1252":       true,
	"latin1":       true,
	"iso-8859-1":   true,
	"utf-8":        true,
	"utf8":         true,
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// Directory validation
	if c.Dirs.Import == "" {
		errs = append(errs, "FECPARSE_IMPORT_DIR is required")
	}
	if c.Dirs.ImportDir() == c.Dirs.ProcessedDir() {
		errs = append(errs, "FECPARSE_PROCESSED_DIR must differ from FECPARSE_IMPORT_DIR")
	}
	if c.Dirs.ImportDir() == c.Dirs.ReviewDir() {
		errs = append(errs, "FECPARSE_REVIEW_DIR must differ from FECPARSE_IMPORT_DIR")
	}

	// Parser validation
	if !supportedEncodings[strings.ToLower(c.Parser.Encoding)] {
		errs = append(errs, fmt.Sprintf("FECPARSE_ENCODING (%q) must be one of: windows-1252, latin1, utf-8", c.Parser.Encoding))
	}
	if !strings.HasPrefix(c.Parser.Extension, ".") {
		errs = append(errs, fmt.Sprintf("FECPARSE_EXTENSION (%q) must start with a dot", c.Parser.Extension))
	}
	if c.Parser.MaxFileSize <= 0 {
		errs = append(errs, "FECPARSE_MAX_FILE_SIZE must be positive")
	}

	// Database validation
	if c.Database.Enabled && c.Database.URL == "" {
		errs = append(errs, "DATABASE_URL is required when FECPARSE_USE_DATABASE is true")
	}
	if c.Database.MaxConns < c.Database.MinConns {
		errs = append(errs, fmt.Sprintf("DB_MAX_CONNS (%d) must be >= DB_MIN_CONNS (%d)",
			c.Database.MaxConns, c.Database.MinConns))
	}
	if c.Database.MaxConns <= 0 {
		errs = append(errs, "DB_MAX_CONNS must be positive")
	}
	if c.Database.MinConns < 0 {
		errs = append(errs, "DB_MIN_CONNS must be non-negative")
	}

	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT (%d) must be 1-65535", c.Server.Port))
	}
	if c.Server.ReadTimeout < 0 {
		errs = append(errs, "SERVER_READ_TIMEOUT must be non-negative")
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "SERVER_SHUTDOWN_TIMEOUT must be positive")
	}

	// Run validation
	if c.Runs.Timeout <= 0 {
		errs = append(errs, "FECPARSE_RUN_TIMEOUT must be positive")
	}
	if c.Runs.ScanInterval < 0 {
		errs = append(errs, "FECPARSE_SCAN_INTERVAL must be non-negative")
	}
	if c.Runs.HistorySize <= 0 {
		errs = append(errs, "FECPARSE_RUN_HISTORY must be positive")
	}

	// Security validation
	if c.Security.RequireAPIKey && len(c.Security.APIKeys) == 0 {
		errs = append(errs, "REQUIRE_API_KEY is true but API_KEYS is empty; configure at least one API key or disable auth")
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return errors.New("validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a safe string representation of the config for logging.
// Sensitive values like database URLs are masked.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Dirs: {Import: %q, Processed: %q, Output: %q, Review: %q}, ",
		c.Dirs.ImportDir(), c.Dirs.ProcessedDir(), c.Dirs.OutputDir(), c.Dirs.ReviewDir()))
	b.WriteString(fmt.Sprintf("Parser: {Encoding: %q, Extension: %q, MaxFileSize: %d}, ",
		c.Parser.Encoding, c.Parser.Extension, c.Parser.MaxFileSize))
	b.WriteString(fmt.Sprintf("Database: {Enabled: %v, URL: [MASKED], MaxConns: %d, MinConns: %d}, ",
		c.Database.Enabled, c.Database.MaxConns, c.Database.MinConns))
	b.WriteString(fmt.Sprintf("Server: {Host: %q, Port: %d}, ", c.Server.Host, c.Server.Port))
	b.WriteString(fmt.Sprintf("Security: {TrustedProxies: %v, RequireAPIKey: %v, APIKeys: [%d MASKED]}, ",
		c.Security.TrustedProxies, c.Security.RequireAPIKey, len(c.Security.APIKeys)))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}",
		c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}
