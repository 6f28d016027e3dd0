//-------------------------------------------------------------------------
//
// METEOR Scorer
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration loading and validation for the
// METEOR scorer CLI and service.
package config

import (
	"fmt"
	"strings"
)

// Config is the root configuration structure.
type Config struct {
	// Language controls stemming. Exact and synonym matching are
	// language-independent.
	Language string `yaml:"language"`

	// CaseSensitive disables the tokenizer's lowercasing.
	CaseSensitive bool `yaml:"case_sensitive"`

	Params   ParamsConfig   `yaml:"params"`
	Stages   []StageConfig  `yaml:"stages"`
	Synonyms SynonymsConfig `yaml:"synonyms"`
}

// ParamsConfig holds the scoring constants. Unset values fall back to
// the published METEOR calibration.
type ParamsConfig struct {
	Alpha *float64 `yaml:"alpha"`
	Beta  *float64 `yaml:"beta"`
	Gamma *float64 `yaml:"gamma"`
}

// StageConfig is one matching stage in precedence order.
type StageConfig struct {
	Kind   string  `yaml:"kind"` // exact, stem, or synonym
	Weight float64 `yaml:"weight"`
}

// SynonymsConfig selects the synonym lookup source for synonym stages.
type SynonymsConfig struct {
	// Source is "file" or "postgres". Required only when a synonym
	// stage is configured.
	Source string `yaml:"source"`

	// File is the path to a YAML file of synonym groups (source=file).
	File string `yaml:"file"`

	// Database locates the synonym table (source=postgres).
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig contains PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
}

// ConnString constructs a PostgreSQL connection string.
func (d DatabaseConfig) ConnString() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("host=%s", d.Host))
	parts = append(parts, fmt.Sprintf("port=%d", d.Port))
	parts = append(parts, fmt.Sprintf("dbname=%s", d.Database))

	if d.Username != "" {
		parts = append(parts, fmt.Sprintf("user=%s", d.Username))
	}
	if d.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", d.Password))
	}
	if d.SSLMode != "" {
		parts = append(parts, fmt.Sprintf("sslmode=%s", d.SSLMode))
	}

	return strings.Join(parts, " ")
}

// DefaultConfig returns the default configuration: english, a
// lowercasing tokenizer, and the classic exact + stem stage pair.
func DefaultConfig() *Config {
	return &Config{
		Language: "english",
		Stages: []StageConfig{
			{Kind: "exact", Weight: 1.0},
			{Kind: "stem", Weight: 0.6},
		},
	}
}

// HasStage reports whether a stage of the given kind is configured.
func (c *Config) HasStage(kind string) bool {
	for _, s := range c.Stages {
		if s.Kind == kind {
			return true
		}
	}
	return false
}
