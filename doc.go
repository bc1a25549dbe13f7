// Package gammaindex computes the gamma index, the joint dose-difference /
// distance-to-agreement comparison of two N-dimensional fields used in
// radiotherapy dose verification.
//
// 🚀 What is in here?
//
//	A small, dependency-light library organized in two packages:
//		• grid   shapes, row-major strides, offsets, bounds and an odometer
//		         over N-dimensional boxes
//		• gamma  field normalization, the bounded point search, the
//		         concurrent grid driver and pass statistics
//
// ✨ Why the bounded search works
//
//	Both fields are divided by DD/DTA so that one tolerance unit of dose and
//	one grid step of distance weigh the same. The dose gap at the point
//	itself is then an upper bound on γ², and no offset longer than that gap
//	can beat it, so each point only scans a ±⌊gap⌋ window.
//
// Quick example:
//
//	g, err := gamma.Compute(ctx, grid.Shape{2, 2},
//		[]float64{1, 2, 6, 4}, []float64{1, 6, 4.2, 7.5}, 1, 1)
//	// g ≈ [0 1.414 1.414 1.020]
//
// See examples/ for a runnable program.
//
//	go get github.com/katalvlaran/gammaindex
package gammaindex
