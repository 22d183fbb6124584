// Package config loads voyage settings.
// Sources, highest priority first:
//  1. environment (VOYAGE_*, OPENAI_API_KEY)
//  2. the file passed with --config
//  3. defaults
package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/adfharrison1/go-voyage/pkg/domain"
	"github.com/adfharrison1/go-voyage/pkg/entity"
	"github.com/adfharrison1/go-voyage/pkg/integration"
	"github.com/adfharrison1/go-voyage/pkg/storage"
)

// Integration providers.
const (
	ProviderMock   = "mock"
	ProviderOpenAI = "openai"
)

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	Prefix string `yaml:"prefix"`

	// BackgroundSave only applies to the snapshot driver. 0 saves after every write.
	BackgroundSave time.Duration `yaml:"background_save"`
}

// OpenAIConfig configures the OpenAI-compatible backend.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// IntegrationConfig selects the generative backend.
type IntegrationConfig struct {
	Provider string        `yaml:"provider"`
	Delay    time.Duration `yaml:"delay"`
	Timeout  time.Duration `yaml:"timeout"`
	OpenAI   OpenAIConfig  `yaml:"openai"`
}

// Config is the full voyage configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Storage     StorageConfig     `yaml:"storage"`
	Integration IntegrationConfig `yaml:"integration"`
	LogLevel    string            `yaml:"log_level"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Storage: StorageConfig{
			Driver: storage.DriverSnapshot,
			Path:   "voyage_data.godb",
			Prefix: entity.DefaultPrefix,
		},
		Integration: IntegrationConfig{
			Provider: ProviderMock,
			Delay:    integration.DefaultMockDelay,
			Timeout:  2 * time.Minute,
		},
		LogLevel: "info",
	}
}

// Load reads path, if non-empty, over the defaults and applies environment overrides.
// A missing file is an error only when path was given explicitly.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("VOYAGE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid VOYAGE_PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("VOYAGE_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("VOYAGE_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("VOYAGE_PROVIDER"); v != "" {
		cfg.Integration.Provider = v
	}
	if v := os.Getenv("VOYAGE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Integration.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.Integration.OpenAI.BaseURL = v
	}
	return nil
}

// Validate checks settings that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.Integration.Provider {
	case ProviderMock:
	case ProviderOpenAI:
		if c.Integration.OpenAI.APIKey == "" {
			return fmt.Errorf("openai provider needs an api key (integration.openai.api_key or OPENAI_API_KEY)")
		}
	default:
		return fmt.Errorf("unknown integration provider %q", c.Integration.Provider)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// OpenStore opens the configured key-value backend.
func (c *Config) OpenStore(ctx context.Context) (domain.KVStore, error) {
	var opts []storage.StorageOption
	if c.Storage.BackgroundSave > 0 {
		opts = append(opts, storage.WithBackgroundSave(c.Storage.BackgroundSave))
	}
	return storage.Open(ctx, c.Storage.Driver, c.Storage.Path, opts...)
}

// Invoker builds the configured generative backend, bounded by the timeout.
func (c *Config) Invoker() domain.Invoker {
	var inv domain.Invoker
	switch c.Integration.Provider {
	case ProviderOpenAI:
		o := c.Integration.OpenAI
		inv = integration.NewOpenAIInvoker(o.APIKey, o.BaseURL, o.Model)
	default:
		inv = integration.NewMockInvoker(c.Integration.Delay)
	}
	return integration.WithTimeout(inv, c.Integration.Timeout)
}

// EntityOptions returns the registry options implied by the config.
func (c *Config) EntityOptions() []entity.Option {
	if c.Storage.Prefix == "" {
		return nil
	}
	return []entity.Option{entity.WithPrefix(c.Storage.Prefix)}
}
