// Package config loads the agenttop TOML configuration with defaults,
// validation, and warnings for unknown keys.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	API     APIConfig     `toml:"api"`
	Display DisplayConfig `toml:"display"`
	Storage StorageConfig `toml:"storage"`
}

type APIConfig struct {
	BaseURL   string `toml:"base_url"`
	TimeoutMS int    `toml:"timeout_ms"`
}

type DisplayConfig struct {
	HistoryCapacity int    `toml:"history_capacity"`
	RefreshRateMS   int    `toml:"refresh_rate_ms"`
	WindowDays      int    `toml:"window_days"`
	ExecutionsLimit int    `toml:"executions_limit"`
	ModelPeriod     string `toml:"model_period"`
}

type StorageConfig struct {
	DBPath        string `toml:"db_path"`
	RetentionDays int    `toml:"retention_days"`
}

type LoadResult struct {
	Config   Config
	Warnings []string
}

func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:   "http://localhost:8080",
			TimeoutMS: 10000,
		},
		Display: DisplayConfig{
			HistoryCapacity: 10,
			RefreshRateMS:   1000,
			WindowDays:      7,
			ExecutionsLimit: 100,
			ModelPeriod:     "7d",
		},
		Storage: StorageConfig{
			DBPath:        defaultDBPath(),
			RetentionDays: 90,
		},
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "agenttop", "config.toml")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "agenttop", "agenttop.db")
}

// Load reads the config from the default path. A missing file yields the
// defaults without error.
func Load() (*LoadResult, error) {
	return LoadFrom(defaultConfigPath())
}

// LoadFrom reads the config from path, merging it over the defaults.
func LoadFrom(path string) (*LoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			return &LoadResult{Config: cfg}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromString(string(data))
}

// LoadFromString parses a TOML document, merging it over the defaults.
// Unknown keys produce warnings rather than errors.
func LoadFromString(data string) (*LoadResult, error) {
	cfg := DefaultConfig()
	result := &LoadResult{}

	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	for _, key := range md.Undecoded() {
		result.Warnings = append(result.Warnings, fmt.Sprintf("unknown config key: %q", key.String()))
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	result.Config = cfg
	return result, nil
}

func validate(cfg *Config) error {
	var errs []string

	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		errs = append(errs, "api base_url must not be empty")
	}
	if cfg.API.TimeoutMS < 1 {
		errs = append(errs, fmt.Sprintf("api timeout_ms must be positive, got %d", cfg.API.TimeoutMS))
	}
	if cfg.Display.HistoryCapacity < 1 {
		errs = append(errs, fmt.Sprintf("history_capacity must be positive, got %d", cfg.Display.HistoryCapacity))
	}
	if cfg.Display.RefreshRateMS < 1 {
		errs = append(errs, fmt.Sprintf("refresh_rate_ms must be positive, got %d", cfg.Display.RefreshRateMS))
	}
	if cfg.Display.WindowDays < 1 {
		errs = append(errs, fmt.Sprintf("window_days must be positive, got %d", cfg.Display.WindowDays))
	}
	if cfg.Display.ExecutionsLimit < 1 {
		errs = append(errs, fmt.Sprintf("executions_limit must be positive, got %d", cfg.Display.ExecutionsLimit))
	}
	if cfg.Display.ModelPeriod == "" {
		errs = append(errs, "model_period must not be empty")
	}
	if cfg.Storage.RetentionDays < 1 {
		errs = append(errs, fmt.Sprintf("storage retention_days must be positive, got %d", cfg.Storage.RetentionDays))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation error: %s", strings.Join(errs, "; "))
	}
	return nil
}
