//-------------------------------------------------------------------------
//
// METEOR Scorer
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package meteor computes the METEOR machine-translation quality score
// between a hypothesis sentence and a reference sentence.
//
// Scoring runs a pipeline of weighted matching stages (exact, stemmed,
// synonym, or user-defined) over the token sequences. Each stage
// proposes candidate correspondences between still-unaligned tokens,
// and an exact optimizer selects the subset that maximizes the number
// of matches and, among those, minimizes fragmentation. The final
// alignment's matched weight, precision, recall, and chunk count
// combine into a score in [0, 1].
package meteor

import (
	"context"
	"fmt"

	"github.com/mtqe/meteor/internal/solve"
)

// ScorerConfig configures a Scorer. Zero-value fields get defaults:
// nil Params means DefaultParams, nil Tokenizer a lowercasing
// tokenizer, nil Solver the built-in exact solver.
type ScorerConfig struct {
	// Stages run in slice order; earlier stages have precedence and
	// consume token positions first. An empty list is allowed and
	// scores every sentence pair as matchless.
	Stages []Stage

	Params    *Params
	Tokenizer *Tokenizer
	Solver    solve.Solver
}

// Scorer scores hypothesis/reference sentence pairs. It is immutable
// after construction and safe for concurrent use.
type Scorer struct {
	stages    []Stage
	params    Params
	tokenizer *Tokenizer
	solver    solve.Solver
}

// New creates a Scorer. All configuration is validated here; scoring
// itself only fails on collaborator errors (synonym lookups, solver
// timeouts).
func New(cfg ScorerConfig) (*Scorer, error) {
	params := DefaultParams()
	if cfg.Params != nil {
		params = *cfg.Params
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}

	for i, stage := range cfg.Stages {
		if stage == nil {
			return nil, fmt.Errorf("stage %d is nil", i)
		}
		if err := validateWeight(stage.Kind(), stage.Weight()); err != nil {
			return nil, err
		}
	}

	tokenizer := cfg.Tokenizer
	if tokenizer == nil {
		tokenizer = NewTokenizer()
	}

	solver := cfg.Solver
	if solver == nil {
		solver = solve.NewLexicographic()
	}

	return &Scorer{
		stages:    append([]Stage(nil), cfg.Stages...),
		params:    params,
		tokenizer: tokenizer,
		solver:    solver,
	}, nil
}

// Score computes the METEOR score for one sentence pair.
func (s *Scorer) Score(ctx context.Context, hypothesis, reference string) (float64, error) {
	result, err := s.ScoreDetailed(ctx, hypothesis, reference)
	if err != nil {
		return 0, err
	}
	return result.Score, nil
}

// ScoreDetailed computes the METEOR score along with its components and
// the chosen alignment.
//
// Empty inputs follow a fixed convention: if both sides tokenize to
// nothing the score is 1.0, if exactly one side does it is 0.0.
func (s *Scorer) ScoreDetailed(ctx context.Context, hypothesis, reference string) (*Result, error) {
	hyp := s.tokenizer.Tokenize(hypothesis)
	ref := s.tokenizer.Tokenize(reference)

	if len(hyp) == 0 || len(ref) == 0 {
		result := &Result{HypLen: len(hyp), RefLen: len(ref)}
		if len(hyp) == len(ref) {
			result.Score = 1.0
		}
		return result, nil
	}

	alignment, totalWeight, chunks, err := s.align(ctx, hyp, ref)
	if err != nil {
		return nil, err
	}

	result := s.params.score(totalWeight, len(hyp), len(ref), len(alignment), chunks)
	result.Alignment = alignment
	return &result, nil
}
