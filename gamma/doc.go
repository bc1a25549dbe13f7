// SPDX-License-Identifier: MIT

// Package gamma computes the gamma index between two N-dimensional fields
// sampled on the same regular grid, e.g. a planned and a measured dose
// distribution.
//
// 🚀 What is the gamma index?
//
//	For each point of the reference field it asks whether some nearby point
//	of the evaluated field agrees within a joint dose-difference (DD) and
//	distance-to-agreement (DTA) tolerance:
//
//	  γ(p) = min over q of sqrt( (R(p)-E(q))²/DD² + |p-q|²/DTA² )
//
//	γ ≤ 1 conventionally means the point passes.
//
// ✨ Key features:
//   - any dimensionality (1D profiles, 2D planes, 3D volumes and beyond)
//   - dose-gap bounded search: only offsets that can still beat the
//     zero-offset candidate are visited, with the same result as a full scan
//   - concurrent, allocation-free per point; deterministic for any worker count
//   - exhaustive reference mode, ignore predicate, radius cap
//   - pass analysis: Pass, PassRate, Summarize
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gammaindex/gamma"
//
//	g, err := gamma.Compute(ctx, grid.Shape{64, 64}, planned, measured,
//		0.03, // DD, in field units
//		2,    // DTA, in grid steps
//		gamma.WithWorkers(4),
//	)
//	fmt.Println(gamma.PassRate(g))
//
// Performance:
//
//   - Time:   O(Σ_p (2·r_p+1)^ndim), r_p = ⌊|R(p)-E(p)|·DTA/DD⌋ clipped to the grid
//   - Memory: O(size)
package gamma
