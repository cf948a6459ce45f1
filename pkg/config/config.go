package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Backend names accepted in the backend field.
const (
	BackendMemory = "memory"
	BackendBolt   = "bolt"
)

type Config struct {
	Backend      string `yaml:"backend"`       // memory or bolt
	BoltPath     string `yaml:"bolt_path"`     // database file for the bolt backend
	LoadMode     string `yaml:"load_mode"`     // merge or replace
	SnapshotPath string `yaml:"snapshot_path"` // default path for save/load without an argument
	LogLevel     string `yaml:"log_level"`
	Prompt       string `yaml:"prompt"`
}

// LoadConfig loads configuration from a YAML file if path is provided,
// otherwise it falls back to environment variables. Environment variables
// override file values either way.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	// If path is provided, it must exist and parse.
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnvOverrides allows environment variables to override YAML config values
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("KV_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("KV_BOLT_PATH"); v != "" {
		cfg.BoltPath = v
	}
	if v := os.Getenv("KV_LOAD_MODE"); v != "" {
		cfg.LoadMode = v
	}
	if v := os.Getenv("KV_SNAPSHOT_PATH"); v != "" {
		cfg.SnapshotPath = v
	}
	if v := os.Getenv("KV_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("KV_PROMPT"); v != "" {
		cfg.Prompt = v
	}
}

// applyDefaults fills in defaults for anything still unset.
func applyDefaults(cfg *Config) {
	if cfg.Backend == "" {
		cfg.Backend = BackendMemory
	}
	if cfg.BoltPath == "" {
		cfg.BoltPath = "kvstore.db"
	}
	if cfg.LoadMode == "" {
		cfg.LoadMode = "merge"
	}
	if cfg.SnapshotPath == "" {
		cfg.SnapshotPath = "data.txt"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Prompt == "" {
		cfg.Prompt = ">> "
	}
}

func validate(cfg *Config) error {
	switch cfg.Backend {
	case BackendMemory, BackendBolt:
	default:
		return fmt.Errorf("invalid backend %q (want %s or %s)", cfg.Backend, BackendMemory, BackendBolt)
	}

	switch cfg.LoadMode {
	case "merge", "replace":
	default:
		return fmt.Errorf("invalid load_mode %q (want merge or replace)", cfg.LoadMode)
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "trace", "debug", "info", "warn", "error", "off":
	default:
		return fmt.Errorf("invalid log_level %q (want trace, debug, info, warn, error, or off)", cfg.LogLevel)
	}

	return nil
}
