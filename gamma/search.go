// SPDX-License-Identifier: MIT

package gamma

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gammaindex/grid"
)

// searcher finds the minimum squared gamma for one reference point at a time.
//
// Algorithm Outline (windowed, fields already normalized):
//  1. gap  = |ref[p] - eval[p]|, best = gap².
//  2. r    = ⌊gap⌋. Any offset with a component beyond ±r has
//     |off|² ≥ (r+1)² > gap² = best, so it cannot improve best.
//  3. Walk every offset of [-r, +r]^ndim in row-major order with
//     grid.Advance, skipping offsets that leave the grid.
//  4. best = min(best, (ref[p] - eval[p+off])² + |off|²).
//
// The window is clipped to the grid before the walk, which visits exactly
// the in-bounds offsets of the unclipped window in the same order. It is
// fixed from the zero-offset gap and not re-tightened as best improves.
//
// A searcher owns its scratch coordinates and must not be shared between
// goroutines. ref and eval are read-only.
type searcher struct {
	shape   grid.Shape
	strides []int
	ref     []float64
	eval    []float64

	maxRadius int // < 0 unlimited
	policy    RadiusPolicy
	limit     float64 // max(shape)-1; larger radii add no in-bounds offsets
	full      grid.Coord

	off   grid.Coord // current window offset
	lower grid.Coord // inclusive window box
	upper grid.Coord
	probe grid.Coord // at + off
}

func newSearcher(shape grid.Shape, strides []int, ref, eval []float64, o *Options) *searcher {
	n := shape.NDim()
	s := &searcher{
		shape:     shape,
		strides:   strides,
		ref:       ref,
		eval:      eval,
		maxRadius: o.maxRadius,
		policy:    o.policy,
		limit:     float64(shape.MaxExtent() - 1),
		off:       make(grid.Coord, n),
		lower:     make(grid.Coord, n),
		upper:     make(grid.Coord, n),
		probe:     make(grid.Coord, n),
	}
	_, s.full = shape.Bounds()

	return s
}

// radius returns the half-width of the search window for a dose gap,
// after clamping to the grid and applying the radius cap.
func (s *searcher) radius(at grid.Coord, gap float64) (int, error) {
	rf := math.Floor(gap)
	if rf > s.limit {
		rf = s.limit
	}
	r := int(rf)
	if s.maxRadius >= 0 && r > s.maxRadius {
		if s.policy == RadiusFail {
			return 0, fmt.Errorf("point %v: radius %d > %d: %w", at, r, s.maxRadius, ErrSearchWindowTooLarge)
		}
		r = s.maxRadius
	}

	return r, nil
}

// minGammaSq returns the minimum squared gamma of the point at (flat
// offset idx) over its dose-gap window.
func (s *searcher) minGammaSq(at grid.Coord, idx int) (float64, error) {
	dose := s.ref[idx]
	gap := math.Abs(dose - s.eval[idx])
	if gap == 0 {
		return 0, nil
	}
	best := gap * gap

	r, err := s.radius(at, gap)
	if err != nil {
		return 0, err
	}
	if r == 0 {
		return best, nil // the window is the zero offset alone
	}

	// Clip [-r, r] to the offsets that keep at+off inside the grid.
	for i := range at {
		s.lower[i] = max(-r, -at[i])
		s.upper[i] = min(r, s.full[i]-at[i])
	}
	copy(s.off, s.lower)
	for {
		grid.AddTo(s.probe, at, s.off)
		d := dose - s.eval[grid.Offset(s.probe, s.strides)]
		if g := d*d + grid.SquaredNorm(s.off); g < best {
			best = g
		}
		if !grid.Advance(s.off, s.lower, s.upper) {
			break
		}
	}

	return best, nil
}

// exhaustiveGammaSq returns the minimum squared gamma of the point at over
// every offset in [-(shape[i]-1), shape[i]-1], filtering with InBounds.
// It ignores the dose-gap bound and serves as the brute-force reference.
func (s *searcher) exhaustiveGammaSq(at grid.Coord, idx int) float64 {
	dose := s.ref[idx]
	gap := dose - s.eval[idx]
	best := gap * gap

	for i := range at {
		s.lower[i] = -s.full[i]
		s.upper[i] = s.full[i]
	}
	copy(s.off, s.lower)
	for {
		grid.AddTo(s.probe, at, s.off)
		if s.shape.InBounds(s.probe) {
			d := dose - s.eval[grid.Offset(s.probe, s.strides)]
			if g := d*d + grid.SquaredNorm(s.off); g < best {
				best = g
			}
		}
		if !grid.Advance(s.off, s.lower, s.upper) {
			break
		}
	}

	return best
}
