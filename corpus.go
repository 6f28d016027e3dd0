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
	"runtime"

	"golang.org/x/sync/errgroup"
)

// PairResult is the outcome of scoring one hypothesis/reference pair of
// a corpus. Err is set when that pair failed; its score is then zero
// and excluded from the macro average.
type PairResult struct {
	Score float64
	Err   error
}

// CorpusResult aggregates per-pair scores over a corpus.
type CorpusResult struct {
	// Pairs holds one result per input line, in input order.
	Pairs []PairResult

	// MacroAverage is the mean score over the successfully scored
	// pairs, 0 when none scored.
	MacroAverage float64

	// Scored and Failed count the pair outcomes.
	Scored int
	Failed int
}

// ScoreCorpus scores line-aligned hypothesis and reference corpora and
// returns per-pair scores plus the macro average.
//
// Pairs are scored in parallel; each scoring call is independent and
// owns its own alignment state. A pair that fails (for example on a
// synonym lookup error) is recorded and skipped, and the rest of the
// corpus still scores.
func (s *Scorer) ScoreCorpus(ctx context.Context, hypotheses, references []string) (*CorpusResult, error) {
	if len(hypotheses) != len(references) {
		return nil, fmt.Errorf("input length mismatch: %d hypotheses, %d references",
			len(hypotheses), len(references))
	}

	result := &CorpusResult{Pairs: make([]PairResult, len(hypotheses))}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range hypotheses {
		g.Go(func() error {
			score, err := s.Score(ctx, hypotheses[i], references[i])
			if err != nil {
				result.Pairs[i] = PairResult{Err: err}
				return nil
			}
			result.Pairs[i] = PairResult{Score: score}
			return nil
		})
	}
	// Workers only record failures, so Wait cannot return an error.
	_ = g.Wait()

	var sum float64
	for _, pair := range result.Pairs {
		if pair.Err != nil {
			result.Failed++
			continue
		}
		result.Scored++
		sum += pair.Score
	}
	if result.Scored > 0 {
		result.MacroAverage = sum / float64(result.Scored)
	}

	return result, nil
}
