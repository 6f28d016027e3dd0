//-------------------------------------------------------------------------
//
// METEOR Scorer
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package solve

import "sort"

// CountChunks returns the number of maximal contiguous monotonic runs
// in the alignment. Edges are ordered by hypothesis position; a chunk
// continues only while both the hypothesis and the reference index
// advance by exactly one between consecutive edges. An empty alignment
// has zero chunks.
//
// This is the single chunk convention for the whole module: the solver
// uses it as its secondary objective and the scorer uses it for the
// fragmentation penalty.
func CountChunks(alignment []Edge) int {
	if len(alignment) == 0 {
		return 0
	}

	sorted := make([]Edge, len(alignment))
	copy(sorted, alignment)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Hyp < sorted[j].Hyp
	})

	chunks := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Hyp != sorted[i-1].Hyp+1 || sorted[i].Ref != sorted[i-1].Ref+1 {
			chunks++
		}
	}

	return chunks
}
