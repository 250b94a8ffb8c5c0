// Package config loads canteiro settings from a YAML file with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/canteiro-app/canteiro/internal/textfmt"
)

type Config struct {
	DBPath      string `yaml:"db_path"`
	Currency    string `yaml:"currency"`
	Timezone    string `yaml:"timezone"`
	LogUseCases bool   `yaml:"log_use_cases"`

	// Computed from Currency and Timezone, not read from YAML.
	CurrencyCode textfmt.Currency `yaml:"-"`
	Location     *time.Location   `yaml:"-"`
}

// Load reads CANTEIRO_CONFIG (default ~/.canteiro/config.yaml), then applies
// environment overrides and defaults. A missing file is not an error.
func Load() (Config, error) {
	var cfg Config

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	configPath := filepath.Join(home, ".canteiro", "config.yaml")
	envOverride(&configPath, "CANTEIRO_CONFIG")

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", configPath, err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading %s: %w", configPath, err)
	}

	envOverride(&cfg.DBPath, "CANTEIRO_DB")
	envOverride(&cfg.Currency, "CANTEIRO_CURRENCY")
	envOverride(&cfg.Timezone, "CANTEIRO_TIMEZONE")
	envOverrideBool(&cfg.LogUseCases, "CANTEIRO_LOG_USE_CASES")

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(home, ".canteiro", "canteiro.db")
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Local"
	}

	cfg.CurrencyCode, err = textfmt.ParseCurrencyCode(cfg.Currency)
	if err != nil {
		return cfg, fmt.Errorf("currency: %w", err)
	}
	cfg.Location, err = time.LoadLocation(cfg.Timezone)
	if err != nil {
		return cfg, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	return cfg, nil
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideBool(field *bool, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = strings.EqualFold(val, "true") || val == "1"
	}
}
