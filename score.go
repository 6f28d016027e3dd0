//-------------------------------------------------------------------------
//
// METEOR Scorer
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package meteor

import (
	"fmt"
	"math"
)

// DefaultAlpha is the default precision/recall balance of the F-mean.
// At 0.9 the F-mean is the canonical METEOR 10·P·R / (R + 9·P).
const DefaultAlpha = 0.9

// DefaultBeta is the default fragmentation penalty exponent.
const DefaultBeta = 3.0

// DefaultGamma is the default fragmentation penalty weight.
const DefaultGamma = 0.5

// Params are the scoring constants. The defaults follow the published
// METEOR calibration; all of them can be overridden.
type Params struct {
	// Alpha balances precision against recall in the F-mean:
	// F = P·R / (Alpha·P + (1-Alpha)·R). Must be in [0, 1].
	Alpha float64 `yaml:"alpha"`

	// Beta is the fragmentation exponent. Must be positive.
	Beta float64 `yaml:"beta"`

	// Gamma scales the fragmentation penalty. Must be in [0, 1].
	Gamma float64 `yaml:"gamma"`
}

// DefaultParams returns the published METEOR calibration.
func DefaultParams() Params {
	return Params{Alpha: DefaultAlpha, Beta: DefaultBeta, Gamma: DefaultGamma}
}

// Validate checks the parameter ranges.
func (p Params) Validate() error {
	if p.Alpha < 0 || p.Alpha > 1 {
		return fmt.Errorf("alpha must be in [0, 1], got %g", p.Alpha)
	}
	if p.Beta <= 0 {
		return fmt.Errorf("beta must be positive, got %g", p.Beta)
	}
	if p.Gamma < 0 || p.Gamma > 1 {
		return fmt.Errorf("gamma must be in [0, 1], got %g", p.Gamma)
	}
	return nil
}

// Result holds the final score and the components it was computed from.
type Result struct {
	Score       float64 `json:"score"`
	Precision   float64 `json:"precision"`
	Recall      float64 `json:"recall"`
	FMean       float64 `json:"fmean"`
	Penalty     float64 `json:"penalty"`
	TotalWeight float64 `json:"total_weight"`
	Matches     int     `json:"matches"`
	Chunks      int     `json:"chunks"`
	HypLen      int     `json:"hyp_len"`
	RefLen      int     `json:"ref_len"`
	Alignment   []Match `json:"alignment,omitempty"`
}

// score combines the alignment components into the final METEOR score.
//
// An empty side or a matchless alignment yields explicit zeros. The
// fragmentation penalty applies only when the alignment has more than
// one chunk. The result is clamped to [0, 1].
func (p Params) score(totalWeight float64, hypLen, refLen, matches, chunks int) Result {
	result := Result{
		TotalWeight: totalWeight,
		Matches:     matches,
		Chunks:      chunks,
		HypLen:      hypLen,
		RefLen:      refLen,
	}
	if hypLen == 0 || refLen == 0 || matches == 0 {
		return result
	}

	result.Precision = totalWeight / float64(hypLen)
	result.Recall = totalWeight / float64(refLen)

	denom := p.Alpha*result.Precision + (1-p.Alpha)*result.Recall
	if denom > 0 {
		result.FMean = (result.Precision * result.Recall) / denom
	}

	if chunks > 1 {
		frag := float64(chunks) / float64(matches)
		result.Penalty = p.Gamma * math.Pow(frag, p.Beta)
	}

	result.Score = clamp01(result.FMean * (1 - result.Penalty))
	return result
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
