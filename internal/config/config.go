// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds configuration for both binaries. Each binary reads the
// sections it needs and ignores the rest.
type Config struct {
	Server    ServerConfig
	Gateway   GatewayConfig
	Telemetry TelemetryConfig
	Logging   LogConfig
}

// ServerConfig holds the record backend's gRPC listener configuration.
type ServerConfig struct {
	Addr string `envconfig:"SERVER_ADDR" default:":50051"`
}

// GatewayConfig holds the HTTP gateway configuration.
type GatewayConfig struct {
	Port           string        `envconfig:"PORT" default:"5000"`
	Host           string        `envconfig:"HOST" default:"0.0.0.0"`
	BackendAddr    string        `envconfig:"BACKEND_ADDR" default:"localhost:50051"`
	SampleInterval time.Duration `envconfig:"METRICS_SAMPLE_INTERVAL" default:"15s"`
}

// TelemetryConfig holds trace exporter configuration. Disabling export
// keeps spans recorded in-process so propagation still works.
type TelemetryConfig struct {
	OTLPEndpoint string `envconfig:"OTLP_ENDPOINT" default:"localhost:4317"`
	Enabled      bool   `envconfig:"OTLP_ENABLED" default:"true"`
	Environment  string `envconfig:"ENVIRONMENT" default:"development"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":50051",
		},
		Gateway: GatewayConfig{
			Port:           "5000",
			Host:           "0.0.0.0",
			BackendAddr:    "localhost:50051",
			SampleInterval: 15 * time.Second,
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: "localhost:4317",
			Enabled:      true,
			Environment:  "development",
		},
		Logging: LogConfig{
			Level: "info",
		},
	}
}
