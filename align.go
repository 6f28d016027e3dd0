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

	"github.com/mtqe/meteor/internal/solve"
)

// Match is one committed correspondence between a hypothesis token
// position and a reference token position.
type Match struct {
	Hyp int `json:"hyp"`
	Ref int `json:"ref"`
}

// align runs the stage pipeline over the two token sequences. Stages
// run in configuration order; each sees only positions no earlier stage
// has covered, and its selected edges are unioned into the running
// alignment. The stage order encodes linguistic confidence, so running
// the same stages in a different order can produce a different result.
func (s *Scorer) align(ctx context.Context, hyp, ref []Token) ([]Match, float64, int, error) {
	var (
		alignment   []solve.Edge
		totalWeight float64
	)
	coveredHyp := make(map[int]bool)
	coveredRef := make(map[int]bool)

	for _, stage := range s.stages {
		candidates, err := generateCandidates(ctx, stage, hyp, ref, coveredHyp, coveredRef)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("stage %s: %w", stage.Kind(), err)
		}
		if len(candidates) == 0 {
			continue
		}

		selected, err := s.solver.Solve(ctx, solve.Problem{
			Candidates: candidates,
			Fixed:      alignment,
		})
		if err != nil {
			return nil, 0, 0, fmt.Errorf("stage %s: %w", stage.Kind(), err)
		}

		for _, i := range selected {
			edge := candidates[i]
			alignment = append(alignment, edge)
			coveredHyp[edge.Hyp] = true
			coveredRef[edge.Ref] = true
			totalWeight += stage.Weight()
		}
	}

	matches := make([]Match, len(alignment))
	for i, edge := range alignment {
		matches[i] = Match{Hyp: edge.Hyp, Ref: edge.Ref}
	}

	return matches, totalWeight, solve.CountChunks(alignment), nil
}

// generateCandidates produces the stage's candidate edges between
// uncovered hypothesis and reference positions. Two tokens are a
// candidate pair when their normalized key sets intersect.
func generateCandidates(ctx context.Context, stage Stage, hyp, ref []Token,
	coveredHyp, coveredRef map[int]bool) ([]solve.Edge, error) {

	// Index uncovered reference positions by key.
	refsByKey := make(map[string][]int)
	for _, tok := range ref {
		if coveredRef[tok.Pos] {
			continue
		}
		keys, err := stage.Normalize(ctx, tok)
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			refsByKey[key] = append(refsByKey[key], tok.Pos)
		}
	}

	var candidates []solve.Edge
	seen := make(map[solve.Edge]bool)
	for _, tok := range hyp {
		if coveredHyp[tok.Pos] {
			continue
		}
		keys, err := stage.Normalize(ctx, tok)
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			for _, refPos := range refsByKey[key] {
				edge := solve.Edge{Hyp: tok.Pos, Ref: refPos}
				if seen[edge] {
					continue
				}
				seen[edge] = true
				candidates = append(candidates, edge)
			}
		}
	}

	return candidates, nil
}
