package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when CONFIG_PATH is unset. A missing default file is
// not an error; configuration then comes from ENV and env-default tags.
const DefaultPath = "./config.yaml"

// Load reads the server configuration and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := read(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// LoadSweep reads the subset of configuration the badge sweep needs, from the
// same file and environment as the server.
func LoadSweep() (*SweepConfig, error) {
	var cfg SweepConfig
	if err := read(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Badges.validate(); err != nil {
		return nil, fmt.Errorf("config: validate: badges: %w", err)
	}
	return &cfg, nil
}

// read fills dst from the YAML file named by CONFIG_PATH (or DefaultPath),
// then applies ENV overrides. ENV wins over YAML, YAML over defaults.
func read(dst any) error {
	path, explicit := os.LookupEnv("CONFIG_PATH")
	explicit = explicit && path != ""
	if !explicit {
		path = DefaultPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, dst); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(dst); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}
