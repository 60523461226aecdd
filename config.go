package sqlgate

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sqlgate/sqlgate/internal/logging"
	"github.com/sqlgate/sqlgate/internal/metrics"
	"github.com/sqlgate/sqlgate/types"
)

// Config holds configuration for a Gateway.
type Config struct {
	// DataDir is the directory file-backed SQLite databases resolve under.
	// It is created on demand when the first file-backed database connects.
	DataDir string

	// Logger receives structured log messages. Defaults to a no-op logger.
	Logger types.Logger

	// Metrics receives operational metrics. Defaults to a no-op collector.
	Metrics types.MetricsCollector

	// LogQueries enables debug logging of statement text. Off by default
	// since statements may embed sensitive literals.
	LogQueries bool
}

// DefaultConfig returns a Config with sensible defaults.
//
// The default data directory is <user config dir>/sqlgate, falling back to
// "sqlgate-data" in the working directory when the user config directory
// cannot be determined.
func DefaultConfig() *Config {
	return &Config{
		DataDir: defaultDataDir(),
		Logger:  logging.NewNopLogger(),
		Metrics: metrics.NewNopMetrics(),
	}
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "sqlgate-data"
	}
	return filepath.Join(base, "sqlgate")
}

// Option configures a Gateway.
type Option func(*Config)

// WithDataDir sets the directory file-backed SQLite databases live in.
//
// Parameters:
//   - dir: The data directory path
//
// Returns:
//   - Option: Configuration option
func WithDataDir(dir string) Option {
	return func(c *Config) {
		c.DataDir = dir
	}
}

// WithLogger sets the structured logger.
//
// Parameters:
//   - logger: The logger to use (e.g., contrib/logging/zaplog)
//
// Returns:
//   - Option: Configuration option
func WithLogger(logger types.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithMetrics sets the metrics collector.
//
// Parameters:
//   - collector: The collector to use (e.g., contrib/metrics/vm)
//
// Returns:
//   - Option: Configuration option
func WithMetrics(collector types.MetricsCollector) Option {
	return func(c *Config) {
		c.Metrics = collector
	}
}

// WithQueryLogging enables debug logging of statement text.
//
// Returns:
//   - Option: Configuration option
func WithQueryLogging() Option {
	return func(c *Config) {
		c.LogQueries = true
	}
}

// FileConfig is the YAML file form of gateway configuration.
type FileConfig struct {
	// DataDir is the SQLite data directory.
	DataDir string `yaml:"data_dir"`

	// LogQueries enables debug logging of statement text.
	LogQueries bool `yaml:"log_queries"`
}

// LoadOptions reads a YAML configuration file and converts it to options.
//
// Only fields present in the file produce options, so file settings compose
// with (and are overridden by) options passed after them to New.
func LoadOptions(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	var opts []Option
	if fc.DataDir != "" {
		opts = append(opts, WithDataDir(fc.DataDir))
	}
	if fc.LogQueries {
		opts = append(opts, WithQueryLogging())
	}
	return opts, nil
}
