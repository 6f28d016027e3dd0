//-------------------------------------------------------------------------
//
// METEOR Scorer
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package solve formulates and solves the alignment selection problem:
// given the candidate edges produced by one matching stage, pick the
// subset that extends the already-committed alignment into an optimal
// partial matching.
//
// The objective is strictly lexicographic: first maximize the number of
// selected edges, then minimize the chunk count of the combined
// (fixed plus selected) alignment. When several selections tie on both
// criteria the solver returns whichever it finds first in its search
// order; callers must not rely on which one.
package solve

import (
	"context"
	"errors"
)

// Edge is a candidate correspondence between a hypothesis token position
// and a reference token position.
type Edge struct {
	Hyp int
	Ref int
}

// Problem is one stage's alignment selection problem.
//
// Candidates are the stage's candidate edges. None of them may touch a
// position already covered by Fixed; the caller guarantees this.
// Fixed is the alignment committed by earlier stages. It does not
// constrain which candidates may be selected, but it participates in
// the chunk-count objective.
type Problem struct {
	Candidates []Edge
	Fixed      []Edge
}

// Solver selects an optimal subset of a problem's candidate edges.
// Solve returns the indices of the selected candidates.
type Solver interface {
	Solve(ctx context.Context, p Problem) ([]int, error)
}

// ErrInfeasible reports that a solver found no feasible assignment.
// The empty selection is always feasible, so this error indicates an
// internal invariant violation, not a property of the input.
var ErrInfeasible = errors.New("alignment problem reported infeasible")

// ErrTimeout reports that the solver ran out of time before proving
// optimality. Callers may retry with a longer deadline or skip the
// sentence pair.
var ErrTimeout = errors.New("alignment solver timed out")
