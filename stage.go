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
)

// Stage is one weighted rule for deciding that two tokens correspond.
// Two tokens are candidates for alignment when their key sets share at
// least one element.
//
// Implementations must be safe for concurrent use; corpus scoring calls
// Normalize from multiple goroutines.
type Stage interface {
	// Kind names the stage for configuration and diagnostics.
	Kind() string

	// Weight is the stage's positive match weight. Each edge the
	// stage contributes to the alignment accrues this weight.
	Weight() float64

	// Normalize produces the comparable keys for a token under this
	// stage's equivalence rule: the surface form for exact matching,
	// the stem for stemmed matching, synonym-set identifiers for
	// synonym matching.
	Normalize(ctx context.Context, tok Token) ([]string, error)
}

// ExactStage matches tokens whose surface forms are identical.
// Case sensitivity is decided by the tokenizer.
type ExactStage struct {
	weight float64
}

// NewExactStage creates an exact-match stage.
func NewExactStage(weight float64) (*ExactStage, error) {
	if err := validateWeight("exact", weight); err != nil {
		return nil, err
	}
	return &ExactStage{weight: weight}, nil
}

func (s *ExactStage) Kind() string    { return "exact" }
func (s *ExactStage) Weight() float64 { return s.weight }

func (s *ExactStage) Normalize(_ context.Context, tok Token) ([]string, error) {
	return []string{tok.Text}, nil
}

// validateWeight rejects non-positive stage weights at construction,
// before any scoring happens.
func validateWeight(kind string, weight float64) error {
	if weight <= 0 {
		return fmt.Errorf("%s stage: weight must be positive, got %g", kind, weight)
	}
	return nil
}
