// SPDX-License-Identifier: MIT

package gamma

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/gammaindex/grid"
	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is how many points a worker evaluates between
// context checks.
const cancelCheckInterval = 256

// Compute returns the gamma index of evaluated against reference.
//
// Both fields hold ∏shape samples in row-major order (last axis fastest).
// For every grid point p:
//
//	scale     = doseTolerance / distanceTolerance
//	gamma²(p) = min over off of (ref[p]/scale - eval[p+off]/scale)² + |off|²
//	result[p] = sqrt(gamma²(p)) / distanceTolerance
//
// where off ranges over integer offsets keeping p+off inside the grid.
// A value ≤ 1 means the point passes. Points rejected by WithIgnore are NaN.
//
// The grid is split into contiguous chunks evaluated concurrently
// (WithWorkers); the result does not depend on the worker count.
//
// Errors:
//   - ErrInvalidShape, grid.ErrSizeOverflow: bad shape.
//   - ErrShapeMismatch: a field length differs from ∏shape.
//   - ErrInvalidTolerance: a tolerance is not finite and > 0.
//   - ErrNonFinite: NaN/Inf in a field (or produced by scaling).
//   - ErrSearchWindowTooLarge: radius cap exceeded under RadiusFail.
//   - ctx.Err(): cancelled before completion; no partial result is returned.
//
// Complexity: O(Σ_p (2·r_p+1)^ndim) time where r_p ≤ max(shape)-1 is the
// point's window radius; O(size) memory plus O(ndim) per worker.
func Compute(ctx context.Context, shape grid.Shape, reference, evaluated []float64,
	doseTolerance, distanceTolerance float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate.
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	size := shape.Size()
	if len(reference) != size {
		return nil, fmt.Errorf("Compute: reference has %d samples, shape %v needs %d: %w",
			len(reference), shape, size, ErrShapeMismatch)
	}
	if len(evaluated) != size {
		return nil, fmt.Errorf("Compute: evaluated has %d samples, shape %v needs %d: %w",
			len(evaluated), shape, size, ErrShapeMismatch)
	}
	if err := validateTolerances(doseTolerance, distanceTolerance); err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}

	// Stage 2: normalize; the scaled fields are frozen from here on.
	ref, eval, err := Normalize(reference, evaluated, doseTolerance, distanceTolerance)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	if err = requireFinite("reference", ref); err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	if err = requireFinite("evaluated", eval); err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}

	// Stage 3: partition and search.
	workers := min(o.workers, size)
	chunk := (size + workers - 1) / workers
	strides := shape.Strides()
	result := make([]float64, size)

	start := time.Now()
	o.logf("gamma: start shape=%v points=%d workers=%d scale=%g exhaustive=%t",
		shape, size, workers, doseTolerance/distanceTolerance, o.exhaustive)

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < size; lo += chunk {
		lo := lo // per-iteration copy (go1.21 loop-variable semantics)
		hi := min(lo+chunk, size)
		s := newSearcher(shape, strides, ref, eval, &o)
		g.Go(func() error {
			return s.run(gctx, lo, hi, reference, result, distanceTolerance, &o)
		})
	}
	if err = g.Wait(); err != nil {
		o.logf("gamma: aborted after %s: %v", time.Since(start), err)
		return nil, fmt.Errorf("Compute: %w", err)
	}

	o.logf("gamma: done points=%d elapsed=%s", size, time.Since(start))

	return result, nil
}

// run evaluates the flat range [lo, hi) and writes result[lo:hi].
// reference is the unscaled field seen by the ignore predicate.
func (s *searcher) run(ctx context.Context, lo, hi int, reference, result []float64,
	distanceTolerance float64, o *Options) error {
	at := s.shape.Coordinate(lo, nil)
	zero, _ := s.shape.Bounds()

	for idx := lo; idx < hi; idx++ {
		if (idx-lo)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		switch {
		case o.ignore != nil && o.ignore(reference[idx]):
			result[idx] = math.NaN()
		case o.exhaustive:
			result[idx] = math.Sqrt(s.exhaustiveGammaSq(at, idx)) / distanceTolerance
		default:
			g2, err := s.minGammaSq(at, idx)
			if err != nil {
				return err
			}
			result[idx] = math.Sqrt(g2) / distanceTolerance
		}

		grid.Advance(at, zero, s.full)
	}

	return nil
}

// requireFinite returns ErrNonFinite naming the first NaN/Inf sample.
func requireFinite(name string, field []float64) error {
	for i, v := range field {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s[%d] = %v: %w", name, i, v, ErrNonFinite)
		}
	}

	return nil
}
