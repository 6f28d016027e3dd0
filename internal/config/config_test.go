//-------------------------------------------------------------------------
//
// METEOR Scorer
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfig writes a temporary YAML config file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meteor.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("failed to load defaults: %v", err)
	}

	if cfg.Language != "english" {
		t.Errorf("expected default language english, got %s", cfg.Language)
	}
	if len(cfg.Stages) != 2 {
		t.Fatalf("expected 2 default stages, got %d", len(cfg.Stages))
	}
	if cfg.Stages[0].Kind != "exact" || cfg.Stages[0].Weight != 1.0 {
		t.Errorf("expected exact(1.0) first, got %s(%g)", cfg.Stages[0].Kind, cfg.Stages[0].Weight)
	}
	if cfg.Stages[1].Kind != "stem" || cfg.Stages[1].Weight != 0.6 {
		t.Errorf("expected stem(0.6) second, got %s(%g)", cfg.Stages[1].Kind, cfg.Stages[1].Weight)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
language: french
params:
  alpha: 0.85
stages:
  - kind: exact
    weight: 1.0
  - kind: synonym
    weight: 0.8
synonyms:
  source: file
  file: synonyms.yaml
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load valid config: %v", err)
	}

	if cfg.Language != "french" {
		t.Errorf("expected language french, got %s", cfg.Language)
	}

	params := cfg.Params.Resolve()
	if params.Alpha != 0.85 {
		t.Errorf("expected alpha 0.85, got %g", params.Alpha)
	}
	if params.Beta != 3.0 {
		t.Errorf("expected default beta 3.0, got %g", params.Beta)
	}
	if params.Gamma != 0.5 {
		t.Errorf("expected default gamma 0.5, got %g", params.Gamma)
	}

	if len(cfg.Stages) != 2 {
		t.Fatalf("expected 2 stages, got %d", len(cfg.Stages))
	}
	if cfg.Stages[1].Kind != "synonym" {
		t.Errorf("expected synonym stage second, got %s", cfg.Stages[1].Kind)
	}
}

func TestLoad_PostgresDefaults(t *testing.T) {
	path := writeConfig(t, `
stages:
  - kind: synonym
    weight: 0.8
synonyms:
  source: postgres
  database:
    host: localhost
    database: wordnet
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	db := cfg.Synonyms.Database
	if db.Port != 5432 {
		t.Errorf("expected default database port 5432, got %d", db.Port)
	}
	if db.SSLMode != "prefer" {
		t.Errorf("expected default ssl_mode prefer, got %s", db.SSLMode)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/meteor.yaml"); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			"unknown stage kind",
			"stages:\n  - kind: paraphrase\n    weight: 1.0\n",
			"unknown stage kind",
		},
		{
			"non-positive weight",
			"stages:\n  - kind: exact\n    weight: 0\n",
			"must be positive",
		},
		{
			"alpha out of range",
			"params:\n  alpha: 1.5\n",
			"params.alpha",
		},
		{
			"negative gamma",
			"params:\n  gamma: -0.1\n",
			"params.gamma",
		},
		{
			"stemmer for unsupported language",
			"language: german\nstages:\n  - kind: stem\n    weight: 0.6\n",
			"no stemmer available",
		},
		{
			"synonym stage without source",
			"stages:\n  - kind: synonym\n    weight: 0.8\n",
			"synonyms.source",
		},
		{
			"file source without file",
			"stages:\n  - kind: synonym\n    weight: 0.8\nsynonyms:\n  source: file\n",
			"synonyms.file",
		},
		{
			"postgres source without host",
			"stages:\n  - kind: synonym\n    weight: 0.8\nsynonyms:\n  source: postgres\n  database:\n    database: wordnet\n",
			"synonyms.database.host",
		},
		{
			"unknown synonym source",
			"synonyms:\n  source: wordnet-api\n",
			"must be file or postgres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.yaml)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestDatabaseConfig_ConnString(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		Database: "wordnet",
		Username: "scorer",
		SSLMode:  "prefer",
	}

	got := db.ConnString()
	want := "host=localhost port=5432 dbname=wordnet user=scorer sslmode=prefer"
	if got != want {
		t.Errorf("ConnString() = %q, want %q", got, want)
	}
}
