// Package config provides client configuration loaded from environment
// variables and an optional YAML file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cdg-go/cdg/api"
	"github.com/cdg-go/cdg/cdg"
)

// Config holds all client configuration.
type Config struct {
	APIKey      string
	BaseURL     string
	Format      api.Format
	Timeout     time.Duration
	LogLevel    string
	OTelEnabled bool
	ServiceName string
}

// fileConfig is the CDG_CONFIG document. Empty fields leave the default.
type fileConfig struct {
	APIKey      string `yaml:"api_key"`
	BaseURL     string `yaml:"base_url"`
	Format      string `yaml:"format"`
	Timeout     string `yaml:"timeout"`
	LogLevel    string `yaml:"log_level"`
	OTelEnabled *bool  `yaml:"otel_enabled"`
	ServiceName string `yaml:"service_name"`
}

// LoadFromEnv reads configuration from environment variables. When CDG_CONFIG
// names a YAML file its values are applied first and the environment
// overrides them.
func LoadFromEnv() (Config, error) {
	fc := fileConfig{}
	if path := os.Getenv("CDG_CONFIG"); path != "" {
		var err error
		fc, err = readFile(path)
		if err != nil {
			return Config{}, err
		}
	}

	otel := false
	if fc.OTelEnabled != nil {
		otel = *fc.OTelEnabled
	}
	if raw := os.Getenv("CDG_OTEL_ENABLED"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid CDG_OTEL_ENABLED %q: %w", raw, err)
		}
		otel = v
	}

	cfg := Config{
		APIKey:      envOr("CDG_API_KEY", fc.APIKey),
		BaseURL:     envOr("CDG_BASE_URL", or(fc.BaseURL, cdg.DefaultBaseURL)),
		Format:      api.Format(strings.ToLower(envOr("CDG_FORMAT", or(fc.Format, string(api.FormatJSON))))),
		LogLevel:    envOr("CDG_LOG_LEVEL", or(fc.LogLevel, "info")),
		OTelEnabled: otel,
		ServiceName: envOr("OTEL_SERVICE_NAME", or(fc.ServiceName, "cdg")),
	}

	rawTimeout := envOr("CDG_TIMEOUT", or(fc.Timeout, "30s"))
	timeout, err := time.ParseDuration(rawTimeout)
	if err != nil {
		return Config{}, fmt.Errorf("config: invalid CDG_TIMEOUT %q: %w", rawTimeout, err)
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("config: CDG_TIMEOUT must be positive, got %s", timeout)
	}
	cfg.Timeout = timeout

	if cfg.APIKey == "" {
		return Config{}, fmt.Errorf("config: CDG_API_KEY is required")
	}
	if cfg.Format != api.FormatJSON && cfg.Format != api.FormatXML {
		return Config{}, fmt.Errorf("config: invalid CDG_FORMAT %q (must be json or xml)", cfg.Format)
	}

	return cfg, nil
}

// ClientOptions returns the cdg options matching the configuration.
func (c Config) ClientOptions() []cdg.Option {
	opts := []cdg.Option{
		cdg.WithBaseURL(c.BaseURL),
		cdg.WithTimeout(c.Timeout),
		cdg.WithFormat(c.Format),
	}
	if c.OTelEnabled {
		opts = append(opts, cdg.WithInstrumentation())
	}
	return opts
}

// LogValue omits the API key.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", c.BaseURL),
		slog.String("format", string(c.Format)),
		slog.Duration("timeout", c.Timeout),
		slog.String("log_level", c.LogLevel),
		slog.Bool("otel_enabled", c.OTelEnabled),
	)
}

func readFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return fc, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func or(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
