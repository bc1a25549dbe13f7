// SPDX-License-Identifier: MIT
// Package gamma: sentinel error set.
// Every error returned by Compute matches one of these via errors.Is,
// or a context error when the caller cancelled.

package gamma

import (
	"errors"

	"github.com/katalvlaran/gammaindex/grid"
)

// Validation runs in a fixed order and reports the first failure:
// shape -> field lengths -> tolerances -> finite values.
var (
	// ErrInvalidShape is returned for ndim < 1 or an extent ≤ 0.
	// It is the grid sentinel, so errors.Is matches either name.
	ErrInvalidShape = grid.ErrInvalidShape

	// ErrShapeMismatch indicates a field whose length differs from ∏shape.
	ErrShapeMismatch = errors.New("gamma: field length does not match shape")

	// ErrInvalidTolerance indicates a dose or distance tolerance that is
	// not a finite value > 0.
	ErrInvalidTolerance = errors.New("gamma: tolerance must be finite and > 0")

	// ErrNonFinite indicates a NaN or ±Inf sample in an input field.
	ErrNonFinite = errors.New("gamma: NaN or Inf in input field")

	// ErrSearchWindowTooLarge is returned under RadiusFail when a point needs
	// a search radius above the configured maximum.
	ErrSearchWindowTooLarge = errors.New("gamma: search window exceeds maximum radius")
)
