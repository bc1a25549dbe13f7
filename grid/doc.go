// SPDX-License-Identifier: MIT

// Package grid provides the multi-index arithmetic used to walk dense
// N-dimensional fields stored as flat row-major slices.
//
// What:
//
//   - Shape describes the extent of every axis; Coord is one integer per axis.
//   - Strides/Offset map a coordinate to its flat storage offset and
//     Shape.Coordinate maps it back.
//   - Add/AddTo, InBounds and SquaredNorm are the primitives of a
//     neighborhood scan around a point.
//   - Advance is an odometer (multi-radix counter) over an inclusive box,
//     used both to enumerate a whole grid and to enumerate a search window.
//
// Layout:
//
//	strides[ndim-1] = 1
//	strides[i]      = strides[i+1] * shape[i+1]
//	offset(c)       = Σ c[i] * strides[i]
//
// The last axis varies fastest.
//
// Complexity:
//
//   - Offset, AddTo, InBounds, SquaredNorm: O(ndim).
//   - Advance: O(1) amortized, O(ndim) worst case per call.
//
// Errors:
//
//   - ErrInvalidShape: ndim < 1 or an extent ≤ 0.
//   - ErrSizeOverflow: the product of extents does not fit in int.
package grid
