// Package config loads the byline program configuration from an optional
// YAML file and BYLINE_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	pkgconfig "byline/internal/pkg/config"
)

// Environment variables that override the file.
const (
	EnvLogLevel       = "BYLINE_LOG_LEVEL"
	EnvLogFormat      = "BYLINE_LOG_FORMAT"
	EnvTracingEnabled = "BYLINE_TRACING_ENABLED"
	EnvMetricsEnabled = "BYLINE_METRICS_ENABLED"
)

var (
	logLevels  = []string{"debug", "info", "warn", "warning", "error"}
	logFormats = []string{"json", "text"}
)

// Config is the program configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Tracing TracingConfig `yaml:"tracing"`
	Metrics MetricsConfig `yaml:"metrics"`

	// Warnings lists environment overrides that were rejected.
	Warnings []string `yaml:"-"`
	// Fallbacks names the fields whose override was rejected, one per warning.
	Fallbacks []string `yaml:"-"`
}

// LoggingConfig selects the slog handler and level.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TracingConfig toggles span export to stderr.
type TracingConfig struct {
	Enabled bool `yaml:"enabled"`
}

// MetricsConfig toggles Prometheus recording.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when no file or override is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Tracing: TracingConfig{Enabled: false},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Load builds the configuration. An empty path skips the file. File values
// are validated strictly; environment overrides that fail validation fall
// back to the file value and are reported in Warnings.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- path comes from the --config flag
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	level := pkgconfig.LoadEnvWithFallback(EnvLogLevel, c.Logging.Level, pkgconfig.ValidateOneOf(logLevels...))
	c.Logging.Level = level.Value.(string)
	c.collect("log_level", level)

	format := pkgconfig.LoadEnvWithFallback(EnvLogFormat, c.Logging.Format, pkgconfig.ValidateOneOf(logFormats...))
	c.Logging.Format = strings.ToLower(format.Value.(string))
	c.collect("log_format", format)

	tracing := pkgconfig.LoadEnvBool(EnvTracingEnabled, c.Tracing.Enabled)
	c.Tracing.Enabled = tracing.Value.(bool)
	c.collect("tracing_enabled", tracing)

	metrics := pkgconfig.LoadEnvBool(EnvMetricsEnabled, c.Metrics.Enabled)
	c.Metrics.Enabled = metrics.Value.(bool)
	c.collect("metrics_enabled", metrics)
}

func (c *Config) collect(field string, result pkgconfig.ConfigLoadResult) {
	if !result.FallbackApplied {
		return
	}
	c.Warnings = append(c.Warnings, result.Warnings...)
	c.Fallbacks = append(c.Fallbacks, field)
}

// Validate checks the logging section.
func (c *Config) Validate() error {
	var errs []error
	if err := pkgconfig.ValidateOneOf(logLevels...)(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level %w", err))
	}
	if err := pkgconfig.ValidateOneOf(logFormats...)(c.Logging.Format); err != nil {
		errs = append(errs, fmt.Errorf("logging.format %w", err))
	}
	return errors.Join(errs...)
}

// RecordMetrics publishes the load timestamp and any fallbacks applied.
func (c *Config) RecordMetrics(m *pkgconfig.ConfigMetrics) {
	m.RecordLoadTimestamp()
	for _, field := range c.Fallbacks {
		m.RecordFallback(field)
	}
	m.SetFallbackActive(len(c.Fallbacks) > 0)
}
