// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
)

// Shape holds the extent of every axis of a dense grid, slowest axis first.
type Shape []int

// Coord is one integer per axis. Depending on context it is either an
// absolute grid position or an offset relative to one.
type Coord []int

// Validate reports whether s describes a non-empty grid whose size fits in int.
// Returns ErrInvalidShape for ndim < 1 or any extent ≤ 0, ErrSizeOverflow
// when the product of extents overflows.
// Complexity: O(ndim).
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("Shape.Validate: no axes: %w", ErrInvalidShape)
	}
	size := 1
	for i, d := range s {
		if d <= 0 {
			return fmt.Errorf("Shape.Validate: axis %d extent %d: %w", i, d, ErrInvalidShape)
		}
		if size > math.MaxInt/d {
			return fmt.Errorf("Shape.Validate: axis %d: %w", i, ErrSizeOverflow)
		}
		size *= d
	}

	return nil
}

// NDim returns the number of axes.
func (s Shape) NDim() int {
	return len(s)
}

// Size returns the number of grid points, ∏ s[i].
// The result is meaningful only for a shape that passed Validate.
// Complexity: O(ndim).
func (s Shape) Size() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// Strides returns the row-major strides of s: the last axis has stride 1
// and strides[i] = strides[i+1] * s[i+1].
// Complexity: O(ndim).
func (s Shape) Strides() []int {
	if len(s) == 0 {
		return nil
	}
	strides := make([]int, len(s))
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}

	return strides
}

// Bounds returns the inclusive box covering the whole grid:
// lower is all zeros, upper[i] = s[i]-1. Pair it with Advance to visit
// every point in row-major order.
func (s Shape) Bounds() (lower, upper Coord) {
	lower = make(Coord, len(s))
	upper = make(Coord, len(s))
	for i, d := range s {
		upper[i] = d - 1
	}

	return lower, upper
}

// MaxExtent returns the largest extent of s, or 0 for an empty shape.
func (s Shape) MaxExtent() int {
	m := 0
	for _, d := range s {
		if d > m {
			m = d
		}
	}

	return m
}

// InBounds reports whether every component of c lies in [0, s[i]).
// c must have len(s) components.
// Complexity: O(ndim).
func (s Shape) InBounds(c Coord) bool {
	for i, d := range s {
		if c[i] < 0 || c[i] >= d {
			return false
		}
	}

	return true
}

// Coordinate converts a flat row-major offset back to a coordinate,
// writing into dst when it has the right length and allocating otherwise.
// It is the inverse of Offset(c, s.Strides()) for 0 ≤ offset < s.Size().
// Complexity: O(ndim).
func (s Shape) Coordinate(offset int, dst Coord) Coord {
	if len(dst) != len(s) {
		dst = make(Coord, len(s))
	}
	for i := len(s) - 1; i >= 0; i-- {
		dst[i] = offset % s[i]
		offset /= s[i]
	}

	return dst
}
