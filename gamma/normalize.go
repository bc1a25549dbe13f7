// SPDX-License-Identifier: MIT

package gamma

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Scale returns doseTolerance / distanceTolerance, the factor that makes
// one tolerance unit of dose difference worth one grid step of distance.
func Scale(doseTolerance, distanceTolerance float64) (float64, error) {
	if err := validateTolerances(doseTolerance, distanceTolerance); err != nil {
		return 0, err
	}

	return doseTolerance / distanceTolerance, nil
}

// Normalize returns copies of reference and evaluated divided by
// Scale(doseTolerance, distanceTolerance). Inputs are not modified.
//
// After normalization a dose difference and a spatial offset are in the
// same unit, so the zero-offset dose gap bounds the search radius.
//
// Errors: ErrShapeMismatch if the fields differ in length,
// ErrInvalidTolerance for a bad tolerance.
// Complexity: O(n) time and memory.
func Normalize(reference, evaluated []float64, doseTolerance, distanceTolerance float64) (ref, eval []float64, err error) {
	if len(reference) != len(evaluated) {
		return nil, nil, fmt.Errorf("Normalize: %d vs %d samples: %w", len(reference), len(evaluated), ErrShapeMismatch)
	}
	scale, err := Scale(doseTolerance, distanceTolerance)
	if err != nil {
		return nil, nil, fmt.Errorf("Normalize: %w", err)
	}
	inv := 1 / scale
	ref = floats.ScaleTo(make([]float64, len(reference)), inv, reference)
	eval = floats.ScaleTo(make([]float64, len(evaluated)), inv, evaluated)

	return ref, eval, nil
}

// validateTolerances rejects tolerances that are ≤ 0, NaN or ±Inf.
func validateTolerances(doseTolerance, distanceTolerance float64) error {
	if !positiveFinite(doseTolerance) {
		return fmt.Errorf("dose tolerance %v: %w", doseTolerance, ErrInvalidTolerance)
	}
	if !positiveFinite(distanceTolerance) {
		return fmt.Errorf("distance tolerance %v: %w", distanceTolerance, ErrInvalidTolerance)
	}
	ratio := doseTolerance / distanceTolerance
	if ratio == 0 || math.IsInf(ratio, 0) || math.IsInf(1/ratio, 0) {
		return fmt.Errorf("tolerance ratio %v: %w", ratio, ErrInvalidTolerance)
	}

	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
