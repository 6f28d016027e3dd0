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
	"strings"

	"github.com/mtqe/meteor"
)

// ValidationError describes a single configuration problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}

	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for errors and returns all
// validation errors found.
func (c *Config) Validate() error {
	var errs ValidationErrors

	errs = append(errs, c.validateParams()...)
	errs = append(errs, c.validateStages()...)
	errs = append(errs, c.validateSynonyms()...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateParams validates the scoring constants.
func (c *Config) validateParams() ValidationErrors {
	var errs ValidationErrors

	params := c.Params.Resolve()
	if params.Alpha < 0 || params.Alpha > 1 {
		errs = append(errs, ValidationError{
			Field:   "params.alpha",
			Message: "must be between 0 and 1",
		})
	}
	if params.Beta <= 0 {
		errs = append(errs, ValidationError{
			Field:   "params.beta",
			Message: "must be positive",
		})
	}
	if params.Gamma < 0 || params.Gamma > 1 {
		errs = append(errs, ValidationError{
			Field:   "params.gamma",
			Message: "must be between 0 and 1",
		})
	}

	return errs
}

// validateStages validates the stage list.
func (c *Config) validateStages() ValidationErrors {
	var errs ValidationErrors

	for i, s := range c.Stages {
		prefix := fmt.Sprintf("stages[%d]", i)

		switch s.Kind {
		case "exact", "synonym":
		case "stem":
			if !meteor.Language(c.Language).IsValid() {
				errs = append(errs, ValidationError{
					Field:   "language",
					Message: fmt.Sprintf("no stemmer available for %q", c.Language),
				})
			}
		default:
			errs = append(errs, ValidationError{
				Field:   prefix + ".kind",
				Message: fmt.Sprintf("unknown stage kind: %q", s.Kind),
			})
		}

		if s.Weight <= 0 {
			errs = append(errs, ValidationError{
				Field:   prefix + ".weight",
				Message: "must be positive",
			})
		}
	}

	return errs
}

// validateSynonyms validates the synonym source when a synonym stage is
// configured.
func (c *Config) validateSynonyms() ValidationErrors {
	var errs ValidationErrors

	switch c.Synonyms.Source {
	case "":
		if c.HasStage("synonym") {
			errs = append(errs, ValidationError{
				Field:   "synonyms.source",
				Message: "required when a synonym stage is configured",
			})
		}
	case "file":
		if c.Synonyms.File == "" {
			errs = append(errs, ValidationError{
				Field:   "synonyms.file",
				Message: "required when source is file",
			})
		}
	case "postgres":
		errs = append(errs, c.validateDatabase("synonyms.database", c.Synonyms.Database)...)
	default:
		errs = append(errs, ValidationError{
			Field:   "synonyms.source",
			Message: fmt.Sprintf("must be file or postgres, got %q", c.Synonyms.Source),
		})
	}

	return errs
}

// validateDatabase validates database configuration.
func (c *Config) validateDatabase(prefix string, db DatabaseConfig) ValidationErrors {
	var errs ValidationErrors

	if db.Host == "" {
		errs = append(errs, ValidationError{
			Field:   prefix + ".host",
			Message: "required",
		})
	}

	if db.Database == "" {
		errs = append(errs, ValidationError{
			Field:   prefix + ".database",
			Message: "required",
		})
	}

	if db.Port < 1 || db.Port > 65535 {
		errs = append(errs, ValidationError{
			Field:   prefix + ".port",
			Message: "must be between 1 and 65535",
		})
	}

	return errs
}

// Resolve returns the scoring parameters with defaults applied for
// unset values.
func (p ParamsConfig) Resolve() meteor.Params {
	params := meteor.DefaultParams()
	if p.Alpha != nil {
		params.Alpha = *p.Alpha
	}
	if p.Beta != nil {
		params.Beta = *p.Beta
	}
	if p.Gamma != nil {
		params.Gamma = *p.Gamma
	}
	return params
}
