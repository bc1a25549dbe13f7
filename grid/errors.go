// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrInvalidShape indicates a shape with no axes or a non-positive extent.
	ErrInvalidShape = errors.New("grid: invalid shape")

	// ErrSizeOverflow indicates the number of grid points does not fit in int.
	ErrSizeOverflow = errors.New("grid: shape size overflows int")
)
