//-------------------------------------------------------------------------
//
// METEOR Scorer
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration from the given path. An empty path
// yields the default configuration. The returned configuration is
// always validated; scoring never starts with invalid settings.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills in default values where the file left settings
// unset.
func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Language == "" {
		cfg.Language = defaults.Language
	}
	if len(cfg.Stages) == 0 {
		cfg.Stages = defaults.Stages
	}
	if cfg.Synonyms.Source == "postgres" {
		if cfg.Synonyms.Database.Port == 0 {
			cfg.Synonyms.Database.Port = 5432
		}
		if cfg.Synonyms.Database.SSLMode == "" {
			cfg.Synonyms.Database.SSLMode = "prefer"
		}
	}
}
