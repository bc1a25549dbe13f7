// SPDX-License-Identifier: MIT

package gamma

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PassThreshold is the conventional acceptance limit: gamma ≤ 1 passes.
const PassThreshold = 1.0

// Summary aggregates a gamma field. NaN entries (ignored points) count
// toward Points only.
type Summary struct {
	Points    int     // len(values)
	Evaluated int     // non-NaN values
	Passed    int     // values ≤ PassThreshold
	PassRate  float64 // Passed / Evaluated; NaN when Evaluated == 0
	Mean      float64 // mean of evaluated values; NaN when Evaluated == 0
	Max       float64 // max of evaluated values; NaN when Evaluated == 0
}

// Pass reports, per point, whether gamma ≤ PassThreshold.
// Ignored (NaN) points are reported as failing; use Summary to separate them.
func Pass(values []float64) []bool {
	out := make([]bool, len(values))
	for i, v := range values {
		out[i] = v <= PassThreshold
	}

	return out
}

// PassRate returns the fraction of evaluated points with gamma ≤ PassThreshold,
// or NaN if no point was evaluated.
func PassRate(values []float64) float64 {
	evaluated := floats.Count(isEvaluated, values)
	if evaluated == 0 {
		return math.NaN()
	}

	return float64(floats.Count(passes, values)) / float64(evaluated)
}

// Summarize computes a Summary of values.
// Complexity: O(n) time, O(n) memory for the evaluated subset.
func Summarize(values []float64) Summary {
	s := Summary{
		Points:   len(values),
		PassRate: math.NaN(),
		Mean:     math.NaN(),
		Max:      math.NaN(),
	}
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if isEvaluated(v) {
			kept = append(kept, v)
		}
	}
	s.Evaluated = len(kept)
	if s.Evaluated == 0 {
		return s
	}
	s.Passed = floats.Count(passes, kept)
	s.PassRate = float64(s.Passed) / float64(s.Evaluated)
	s.Mean = stat.Mean(kept, nil)
	s.Max = floats.Max(kept)

	return s
}

func isEvaluated(v float64) bool { return !math.IsNaN(v) }

func passes(v float64) bool { return v <= PassThreshold }
