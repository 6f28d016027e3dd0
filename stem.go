//-------------------------------------------------------------------------
//
// METEOR Scorer
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package meteor

import (
	"context"
	"fmt"

	"github.com/kljensen/snowball"
)

// StemStage matches tokens that share a snowball stem, so inflected
// forms of the same word align ("cats" with "cat", "running" with
// "runs").
type StemStage struct {
	weight   float64
	language Language
}

// NewStemStage creates a stemmed-match stage for the given language.
// Unsupported languages are rejected here, never mid-scoring.
func NewStemStage(weight float64, language Language) (*StemStage, error) {
	if err := validateWeight("stem", weight); err != nil {
		return nil, err
	}
	if !language.IsValid() {
		return nil, fmt.Errorf("stem stage: unsupported language %q", language)
	}
	// The snowball package resolves languages at call time; probe once
	// so a mismatch surfaces as a configuration error.
	if _, err := snowball.Stem("probe", string(language), true); err != nil {
		return nil, fmt.Errorf("stem stage: language %q: %w", language, err)
	}
	return &StemStage{weight: weight, language: language}, nil
}

func (s *StemStage) Kind() string    { return "stem" }
func (s *StemStage) Weight() float64 { return s.weight }

func (s *StemStage) Normalize(_ context.Context, tok Token) ([]string, error) {
	stemmed, err := snowball.Stem(tok.Text, string(s.language), true)
	if err != nil {
		return nil, fmt.Errorf("stem %q: %w", tok.Text, err)
	}
	if stemmed == "" {
		// Punctuation and other non-word tokens stem to nothing; fall
		// back to the surface form so they still match exactly.
		stemmed = tok.Text
	}
	return []string{stemmed}, nil
}
