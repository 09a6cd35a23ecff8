package engine

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"

	"github.com/germanamz/minutes/pkg/providers/provider"
)

// Config is the top-level engine configuration.
type Config struct {
	DefaultProvider string           `yaml:"default_provider" env:"MINUTES_PROVIDER"`
	APIKey          string           `yaml:"-" env:"MINUTES_API_KEY"` //nolint:gosec // configuration field, not a hardcoded secret
	Timeout         string           `yaml:"timeout" env:"MINUTES_TIMEOUT"` // Duration string; empty means no timeout.
	LogLevel        string           `yaml:"log_level" env:"MINUTES_LOG_LEVEL"`
	LogFormat       string           `yaml:"log_format" env:"MINUTES_LOG_FORMAT"`
	Providers       []ProviderConfig `yaml:"providers"`
}

// ProviderConfig overrides a built-in provider.
type ProviderConfig struct {
	ID      string `yaml:"id"`
	APIKey  string `yaml:"api_key"` //nolint:gosec // configuration field, not a hardcoded secret
	BaseURL string `yaml:"base_url"` // Full endpoint URL.
	Model   string `yaml:"model"`
}

// LoadConfig reads a YAML file and returns a Config.
// Environment variables referenced as ${VAR} or $VAR in the YAML are expanded
// before parsing, so API keys can stay in the environment (e.g. loaded from a
// .env file) rather than in the config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("engine: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("engine: parse config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overlays MINUTES_* environment variables onto cfg. Unset variables
// leave the corresponding field untouched.
func ApplyEnv(cfg Config) (Config, error) {
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("engine: env config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration against the provider catalog.
func (c Config) Validate(catalog *provider.Catalog) error {
	if c.DefaultProvider != "" && !catalog.Has(c.DefaultProvider) {
		return fmt.Errorf("engine: config: default_provider %q: %w", c.DefaultProvider, &provider.UnknownProviderError{ID: c.DefaultProvider})
	}

	if _, err := c.timeout(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(c.Providers))
	for _, p := range c.Providers {
		if p.ID == "" {
			return fmt.Errorf("engine: config: provider id is required")
		}
		if !catalog.Has(p.ID) {
			return fmt.Errorf("engine: config: provider %q: %w", p.ID, &provider.UnknownProviderError{ID: p.ID})
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("engine: config: duplicate provider %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return nil
}

// Credential returns the API key configured for the provider id, falling
// back to the global key.
func (c Config) Credential(id string) string {
	for _, p := range c.Providers {
		if p.ID == id && p.APIKey != "" {
			return p.APIKey
		}
	}

	return c.APIKey
}

// ProviderID returns id, or the configured default, or the catalog default.
func (c Config) ProviderID(id string, catalog *provider.Catalog) string {
	switch {
	case id != "":
		return id
	case c.DefaultProvider != "":
		return c.DefaultProvider
	default:
		return catalog.DefaultID()
	}
}

func (c Config) timeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("engine: config: timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("engine: config: timeout must not be negative")
	}

	return d, nil
}

func (c Config) overrides() map[string]provider.Override {
	out := make(map[string]provider.Override, len(c.Providers))
	for _, p := range c.Providers {
		if p.BaseURL == "" && p.Model == "" {
			continue
		}
		out[p.ID] = provider.Override{Endpoint: p.BaseURL, Model: p.Model}
	}

	return out
}
