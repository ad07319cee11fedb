package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Storage backends understood by the application.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// DefaultConfigFile is read from the working directory when TODO_CONFIG is unset.
const DefaultConfigFile = ".todo.yaml"

// Config holds the user's settings.
type Config struct {
	DataFile  string `yaml:"data_file"`
	Backend   string `yaml:"backend"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	NoColor   bool   `yaml:"no_color"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DataFile:  "tasks.json",
		Backend:   BackendFile,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load builds the configuration from defaults, the YAML config file and the
// environment, in that order.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path := envStr("TODO_CONFIG", DefaultConfigFile)
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}
	cfg.mergeEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// mergeFile overlays the YAML file at path. A missing file is not an error.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() {
	c.DataFile = envStr("TODO_DATA_FILE", c.DataFile)
	c.Backend = envStr("TODO_BACKEND", c.Backend)
	c.LogLevel = envStr("LOG_LEVEL", c.LogLevel)
	c.LogFormat = envStr("LOG_FORMAT", c.LogFormat)
	// NO_COLOR disables colour whenever it is present, whatever its value.
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.NoColor = true
	}
	c.NoColor = envBool("TODO_NO_COLOR", c.NoColor)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.DataFile == "" && c.Backend != BackendMemory {
		return fmt.Errorf("data_file must not be empty")
	}
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("backend must be one of file, sqlite, memory, got %q", c.Backend)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	switch c.LogLevel {
	case "panic", "fatal", "error", "warn", "warning", "info", "debug", "trace":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}
