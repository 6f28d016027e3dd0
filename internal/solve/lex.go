//-------------------------------------------------------------------------
//
// METEOR Scorer
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package solve

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
)

// ctxCheckInterval is how many search nodes are expanded between
// context checks.
const ctxCheckInterval = 1024

// Lexicographic is the built-in exact solver. It realizes the two-level
// objective as two phases: an augmenting-path matching computes the
// maximum cardinality, then a branch-and-bound search enumerates only
// selections reaching that cardinality and keeps the one with the
// fewest chunks in the combined alignment.
//
// Per-sentence problems are small (candidates only exist between tokens
// a stage considers equal), so exact search is affordable. An external
// MILP engine can replace this by implementing Solver.
type Lexicographic struct{}

// NewLexicographic creates the built-in lexicographic solver.
func NewLexicographic() *Lexicographic {
	return &Lexicographic{}
}

// Solve picks a maximum-cardinality subset of p.Candidates that forms a
// partial matching, breaking ties by the chunk count of the selection
// combined with p.Fixed. It returns indices into p.Candidates.
func (l *Lexicographic) Solve(ctx context.Context, p Problem) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, mapCtxErr(err)
	}
	if len(p.Candidates) == 0 {
		return nil, nil
	}

	// Group candidate indices by hypothesis position, ascending, with
	// each group's candidates ordered by reference position. The fixed
	// branching order makes tie resolution deterministic.
	byHyp := make(map[int][]int)
	var hyps []int
	for i, e := range p.Candidates {
		if _, ok := byHyp[e.Hyp]; !ok {
			hyps = append(hyps, e.Hyp)
		}
		byHyp[e.Hyp] = append(byHyp[e.Hyp], i)
	}
	sort.Ints(hyps)
	for _, h := range hyps {
		group := byHyp[h]
		sort.Slice(group, func(a, b int) bool {
			return p.Candidates[group[a]].Ref < p.Candidates[group[b]].Ref
		})
	}

	target := maxCardinality(hyps, byHyp, p.Candidates)
	if target == 0 {
		return nil, nil
	}

	search := &lexSearch{
		ctx:        ctx,
		problem:    p,
		hyps:       hyps,
		byHyp:      byHyp,
		target:     target,
		usedRef:    make(map[int]bool),
		bestChunks: math.MaxInt,
	}
	search.dfs(0)
	if search.err != nil {
		return nil, search.err
	}
	if search.best == nil {
		// A maximum matching of size target exists by construction.
		return nil, ErrInfeasible
	}

	sort.Ints(search.best)
	return search.best, nil
}

// mapCtxErr turns a context error into the solver's error vocabulary.
func mapCtxErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return err
}

// maxCardinality computes the size of a maximum bipartite matching over
// the candidate edges using augmenting paths.
func maxCardinality(hyps []int, byHyp map[int][]int, candidates []Edge) int {
	matchRef := make(map[int]int) // reference position -> hypothesis position

	var augment func(h int, visited map[int]bool) bool
	augment = func(h int, visited map[int]bool) bool {
		for _, i := range byHyp[h] {
			ref := candidates[i].Ref
			if visited[ref] {
				continue
			}
			visited[ref] = true
			prev, taken := matchRef[ref]
			if !taken || augment(prev, visited) {
				matchRef[ref] = h
				return true
			}
		}
		return false
	}

	size := 0
	for _, h := range hyps {
		if augment(h, make(map[int]bool)) {
			size++
		}
	}
	return size
}

// lexSearch is the branch-and-bound state for the chunk tie-break.
type lexSearch struct {
	ctx     context.Context
	problem Problem
	hyps    []int
	byHyp   map[int][]int
	target  int

	usedRef map[int]bool
	chosen  []int

	best       []int
	bestChunks int
	nodes      int
	err        error
}

// dfs branches over the candidates of hyps[pos], or over leaving that
// position unmatched. Branches that cannot reach the target cardinality
// are pruned.
func (s *lexSearch) dfs(pos int) {
	if s.err != nil || s.bestChunks == 1 {
		// One chunk is the minimum for a non-empty alignment.
		return
	}

	s.nodes++
	if s.nodes%ctxCheckInterval == 0 {
		if err := s.ctx.Err(); err != nil {
			s.err = mapCtxErr(err)
			return
		}
	}

	if pos == len(s.hyps) {
		if len(s.chosen) != s.target {
			return
		}
		combined := make([]Edge, 0, len(s.problem.Fixed)+len(s.chosen))
		combined = append(combined, s.problem.Fixed...)
		for _, i := range s.chosen {
			combined = append(combined, s.problem.Candidates[i])
		}
		if chunks := CountChunks(combined); chunks < s.bestChunks {
			s.bestChunks = chunks
			s.best = append([]int(nil), s.chosen...)
		}
		return
	}

	remaining := len(s.hyps) - pos
	if len(s.chosen)+remaining < s.target {
		return
	}

	for _, i := range s.byHyp[s.hyps[pos]] {
		ref := s.problem.Candidates[i].Ref
		if s.usedRef[ref] {
			continue
		}
		s.usedRef[ref] = true
		s.chosen = append(s.chosen, i)
		s.dfs(pos + 1)
		s.chosen = s.chosen[:len(s.chosen)-1]
		s.usedRef[ref] = false
	}

	// Leave this hypothesis position unmatched.
	if len(s.chosen)+remaining-1 >= s.target {
		s.dfs(pos + 1)
	}
}
