// Package config loads service settings from an optional YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all trainer service configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	Generator GeneratorConfig `yaml:"generator"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr              string        `yaml:"addr" env:"TRAINERS_ADDR"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"TRAINERS_READ_HEADER_TIMEOUT"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" env:"TRAINERS_SHUTDOWN_TIMEOUT"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"TRAINERS_LOG_LEVEL"`   // debug, info, warn, error
	Format string `yaml:"format" env:"TRAINERS_LOG_FORMAT"` // json or console
}

// GeneratorConfig bounds the target-sum search.
type GeneratorConfig struct {
	MaxTrials int `yaml:"max_trials" env:"TRAINERS_MAX_TRIALS"`
	MaxPasses int `yaml:"max_passes" env:"TRAINERS_MAX_PASSES"`
}

// TelemetryConfig enables OTLP tracing when Endpoint is set.
type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint" env:"TRAINERS_OTEL_ENDPOINT"`
	ServiceName string `yaml:"service_name" env:"TRAINERS_OTEL_SERVICE_NAME"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Generator: GeneratorConfig{
			MaxTrials: 1000,
			MaxPasses: 1024,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "trainers",
		},
	}
}

// Load reads path over the defaults and then applies TRAINERS_* environment
// overrides. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv overlays environment variables onto target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("config: server.addr is required")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("config: unknown logging.format %q", c.Logging.Format)
	}
	if c.Generator.MaxTrials < 1 || c.Generator.MaxPasses < 1 {
		return errors.New("config: generator limits must be positive")
	}
	return nil
}
