package gamma_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gammaindex/gamma"
	"github.com/katalvlaran/gammaindex/grid"
	"github.com/stretchr/testify/require"
)

// randomShape returns a shape of 1..maxDim axes with extents 1..maxExtent.
func randomShape(rng *rand.Rand, maxDim, maxExtent int) grid.Shape {
	s := make(grid.Shape, 1+rng.Intn(maxDim))
	for i := range s {
		s[i] = 1 + rng.Intn(maxExtent)
	}

	return s
}

// randomField fills n samples uniformly from [0, span).
func randomField(rng *rand.Rand, n int, span float64) []float64 {
	f := make([]float64, n)
	for i := range f {
		f[i] = rng.Float64() * span
	}

	return f
}

// mustCompute runs gamma.Compute with a background context or fails the test.
func mustCompute(t *testing.T, shape grid.Shape, ref, eval []float64, dd, dta float64, opts ...gamma.Option) []float64 {
	t.Helper()
	g, err := gamma.Compute(context.Background(), shape, ref, eval, dd, dta, opts...)
	require.NoError(t, err, "Compute(shape=%v, dd=%v, dta=%v)", shape, dd, dta)
	require.Len(t, g, shape.Size())

	return g
}
