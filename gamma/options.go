// SPDX-License-Identifier: MIT

// Package gamma: functional configuration for Compute.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions, which resolves defaults.
//
// No option changes the metric itself except WithRadiusPolicy(RadiusClamp)
// combined with WithMaxRadius, which trades exactness for bounded work.
package gamma

import "runtime"

// RadiusPolicy selects what happens when a point needs a search radius
// above the configured maximum (see WithMaxRadius).
type RadiusPolicy int

const (
	// RadiusFail aborts Compute with ErrSearchWindowTooLarge.
	RadiusFail RadiusPolicy = iota

	// RadiusClamp searches only up to the maximum radius. The reported
	// gamma is then an upper bound on the exact value.
	RadiusClamp
)

// ---------- Defaults ----------

const (
	// DefaultMaxRadius disables the radius cap.
	DefaultMaxRadius = -1

	// DefaultRadiusPolicy applies when a cap is set.
	DefaultRadiusPolicy = RadiusFail

	// DefaultExhaustive keeps the pruned window search.
	DefaultExhaustive = false
)

const (
	panicWorkersInvalid = "gamma: WithWorkers: n must be >= 1"
	panicRadiusInvalid  = "gamma: WithMaxRadius: r must be >= 0"
	panicPolicyInvalid  = "gamma: WithRadiusPolicy: unknown policy"
	panicIgnoreNil      = "gamma: WithIgnore: predicate must be non-nil"
)

// Logf is a printf-style diagnostic sink.
type Logf func(format string, args ...any)

// Option mutates Options. Constructors panic only on programmer error.
type Option func(*Options)

// Options is the resolved configuration of one Compute call.
type Options struct {
	workers    int          // ≥ 1; GOMAXPROCS by default
	maxRadius  int          // < 0 means unlimited
	policy     RadiusPolicy // applies only when maxRadius ≥ 0
	exhaustive bool
	ignore     func(float64) bool
	logf       Logf
}

// WithWorkers sets the number of goroutines sharing the grid.
// The effective count never exceeds the number of grid points.
// Results do not depend on n.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithMaxRadius caps the per-point search radius, in grid steps.
// What happens above the cap is chosen by WithRadiusPolicy.
func WithMaxRadius(r int) Option {
	if r < 0 {
		panic(panicRadiusInvalid)
	}

	return func(o *Options) { o.maxRadius = r }
}

// WithRadiusPolicy selects RadiusFail or RadiusClamp.
func WithRadiusPolicy(p RadiusPolicy) Option {
	if p != RadiusFail && p != RadiusClamp {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithExhaustiveSearch disables the dose-gap window and compares every
// point against the whole evaluated field. O(size²); meant as a reference.
// The radius cap does not apply in this mode.
func WithExhaustiveSearch() Option {
	return func(o *Options) { o.exhaustive = true }
}

// WithIgnore skips every reference point whose unscaled value satisfies
// pred; its gamma is reported as NaN and it is excluded from PassRate.
//
// Example (skip the low-dose region):
//
//	gamma.WithIgnore(func(d float64) bool { return d < 0.1*maxDose })
func WithIgnore(pred func(float64) bool) Option {
	if pred == nil {
		panic(panicIgnoreNil)
	}

	return func(o *Options) { o.ignore = pred }
}

// WithLogf routes Compute's start/finish diagnostics to f.
// A nil f mutes logging.
func WithLogf(f Logf) Option {
	return func(o *Options) {
		if f == nil {
			o.logf = nopLogf
			return
		}
		o.logf = f
	}
}

func nopLogf(string, ...any) {}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:    runtime.GOMAXPROCS(0),
		maxRadius:  DefaultMaxRadius,
		policy:     DefaultRadiusPolicy,
		exhaustive: DefaultExhaustive,
		logf:       nopLogf,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
