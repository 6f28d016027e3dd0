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
	"testing"
	"time"
)

func TestCountChunks(t *testing.T) {
	tests := []struct {
		name      string
		alignment []Edge
		want      int
	}{
		{"empty", nil, 0},
		{"single edge", []Edge{{0, 0}}, 1},
		{"contiguous run", []Edge{{0, 0}, {1, 1}, {2, 2}}, 1},
		{"unsorted contiguous run", []Edge{{2, 2}, {0, 0}, {1, 1}}, 1},
		{"isolated edges", []Edge{{0, 0}, {2, 4}, {5, 1}}, 3},
		{"gap in hypothesis", []Edge{{0, 0}, {2, 1}}, 2},
		{"gap in reference", []Edge{{0, 0}, {1, 2}}, 2},
		{"reversed pair breaks the run", []Edge{{0, 1}, {1, 0}}, 2},
		{
			"reordered sentence",
			[]Edge{{0, 4}, {1, 5}, {2, 3}, {3, 0}, {4, 1}, {5, 2}, {6, 6}},
			4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountChunks(tt.alignment); got != tt.want {
				t.Errorf("CountChunks() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLexicographic_NoCandidates(t *testing.T) {
	solver := NewLexicographic()

	selected, err := solver.Solve(context.Background(), Problem{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selected) != 0 {
		t.Errorf("expected empty selection, got %v", selected)
	}
}

func TestLexicographic_ForcedMatching(t *testing.T) {
	// Every position has exactly one candidate; the solver must take
	// them all.
	solver := NewLexicographic()
	p := Problem{
		Candidates: []Edge{{0, 2}, {1, 0}, {2, 1}},
	}

	selected, err := solver.Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selected) != 3 {
		t.Fatalf("expected 3 selected edges, got %d", len(selected))
	}
}

func TestLexicographic_MaximizesCardinality(t *testing.T) {
	// Greedy selection of (0,0) would block (1,0); the optimum pairs
	// (0,1) with (1,0) for cardinality 2.
	solver := NewLexicographic()
	p := Problem{
		Candidates: []Edge{{0, 0}, {0, 1}, {1, 0}},
	}

	selected, err := solver.Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selected) != 2 {
		t.Fatalf("expected cardinality 2, got %d (selection %v)", len(selected), selected)
	}

	used := selectedEdges(p, selected)
	if !containsEdge(used, Edge{0, 1}) || !containsEdge(used, Edge{1, 0}) {
		t.Errorf("expected {(0,1),(1,0)}, got %v", used)
	}
}

func TestLexicographic_MinimizesChunksAmongOptima(t *testing.T) {
	// Both {(0,0),(1,1)} and {(0,2),(1,1)} have cardinality 2, but the
	// first forms a single chunk.
	solver := NewLexicographic()
	p := Problem{
		Candidates: []Edge{{0, 0}, {0, 2}, {1, 1}},
	}

	selected, err := solver.Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	used := selectedEdges(p, selected)
	if !containsEdge(used, Edge{0, 0}) || !containsEdge(used, Edge{1, 1}) {
		t.Errorf("expected the single-chunk selection {(0,0),(1,1)}, got %v", used)
	}
	if chunks := CountChunks(used); chunks != 1 {
		t.Errorf("expected 1 chunk, got %d", chunks)
	}
}

func TestLexicographic_FixedEdgesShapeTheTieBreak(t *testing.T) {
	// (1,1) extends the fixed edge (0,0) into one chunk; (1,3) would
	// start a second chunk. Both candidates alone have cardinality 1.
	solver := NewLexicographic()
	p := Problem{
		Candidates: []Edge{{1, 3}, {1, 1}},
		Fixed:      []Edge{{0, 0}},
	}

	selected, err := solver.Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selected) != 1 {
		t.Fatalf("expected 1 selected edge, got %d", len(selected))
	}

	used := selectedEdges(p, selected)
	if !containsEdge(used, Edge{1, 1}) {
		t.Errorf("expected (1,1) to extend the fixed chunk, got %v", used)
	}
}

func TestLexicographic_RepeatedTokens(t *testing.T) {
	// Two identical tokens on each side: four candidates, optimum is
	// the diagonal pairing forming one chunk.
	solver := NewLexicographic()
	p := Problem{
		Candidates: []Edge{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	}

	selected, err := solver.Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selected) != 2 {
		t.Fatalf("expected cardinality 2, got %d", len(selected))
	}

	used := selectedEdges(p, selected)
	if chunks := CountChunks(used); chunks != 1 {
		t.Errorf("expected the diagonal pairing (1 chunk), got %v (%d chunks)", used, chunks)
	}
}

func TestLexicographic_ExpiredDeadline(t *testing.T) {
	solver := NewLexicographic()

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	// Enough repeated-token candidates to guarantee the search passes a
	// context checkpoint.
	var candidates []Edge
	for h := 0; h < 8; h++ {
		for r := 0; r < 8; r++ {
			candidates = append(candidates, Edge{h, r})
		}
	}

	_, err := solver.Solve(ctx, Problem{Candidates: candidates})
	if err == nil {
		t.Fatal("expected an error for an expired deadline")
	}
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}

func selectedEdges(p Problem, selected []int) []Edge {
	edges := make([]Edge, 0, len(selected))
	for _, i := range selected {
		edges = append(edges, p.Candidates[i])
	}
	return edges
}

func containsEdge(edges []Edge, e Edge) bool {
	for _, got := range edges {
		if got == e {
			return true
		}
	}
	return false
}
