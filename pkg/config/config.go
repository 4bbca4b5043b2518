package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the manifest nor the environment sets
// a value.
const (
	DefaultOutputDir  = "generated"
	DefaultWorkers    = 4
	DefaultCacheSize  = 256
	DefaultCacheTTL   = 5 * time.Minute
	DefaultWatchDelay = 2 * time.Second
	DefaultLogLevel   = "info"
)

// Duration is a time.Duration that reads and writes as a string like
// "5m" in YAML manifests. Bare integers are accepted as nanoseconds.
type Duration time.Duration

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err == nil {
		*d = Duration(parsed)
		return nil
	}
	nanos, nerr := strconv.ParseInt(value.Value, 10, 64)
	if nerr != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(nanos)
	return nil
}

// Config holds all application configuration.
type Config struct {
	// SourceDirs are the directories scanned for .proto files.
	SourceDirs []string `yaml:"source_dirs"`

	// OutputDir is where generated Java sources are written.
	OutputDir string `yaml:"output_dir"`

	// Workers bounds concurrent generation jobs.
	Workers int `yaml:"workers"`

	// Cache configuration
	CacheEnabled bool     `yaml:"cache_enabled"`
	CacheSize    int      `yaml:"cache_size"`
	CacheTTL     Duration `yaml:"cache_ttl"`

	// WatchDelay is how long watch mode waits after the last change
	// before regenerating.
	WatchDelay Duration `yaml:"watch_delay"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SourceDirs:   []string{"."},
		OutputDir:    DefaultOutputDir,
		Workers:      DefaultWorkers,
		CacheEnabled: true,
		CacheSize:    DefaultCacheSize,
		CacheTTL:     Duration(DefaultCacheTTL),
		WatchDelay:   Duration(DefaultWatchDelay),
		LogLevel:     DefaultLogLevel,
	}
}

// LoadConfig loads configuration from an optional manifest file and
// the environment. An empty path uses the default manifest name when
// that file exists; environment variables override manifest values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		if _, err := os.Stat(DefaultManifestName); err == nil {
			path = DefaultManifestName
		}
	}
	if path != "" {
		loaded, err := LoadManifest(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies PROTOPOJO_* environment variables on top
// of cfg.
func applyEnvOverrides(cfg *Config) {
	cfg.OutputDir = getEnv("PROTOPOJO_OUTPUT_DIR", cfg.OutputDir)
	cfg.LogLevel = getEnv("PROTOPOJO_LOG_LEVEL", cfg.LogLevel)
	cfg.Workers = getEnvInt("PROTOPOJO_WORKERS", cfg.Workers)
	cfg.CacheEnabled = getEnvBool("PROTOPOJO_CACHE_ENABLED", cfg.CacheEnabled)
	cfg.CacheSize = getEnvInt("PROTOPOJO_CACHE_SIZE", cfg.CacheSize)
	cfg.CacheTTL = Duration(getEnvDuration("PROTOPOJO_CACHE_TTL", time.Duration(cfg.CacheTTL)))
	cfg.WatchDelay = Duration(getEnvDuration("PROTOPOJO_WATCH_DELAY", time.Duration(cfg.WatchDelay)))
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if len(c.SourceDirs) == 0 {
		return fmt.Errorf("at least one source directory is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.CacheEnabled && c.CacheSize < 1 {
		return fmt.Errorf("cache size must be positive, got %d", c.CacheSize)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration returns a duration environment variable or a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
