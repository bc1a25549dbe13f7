package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gammaindex/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Shape validation
//----------------------------------------------------------------------------//

// TestShape_Validate covers empty shapes, non-positive extents and overflow.
func TestShape_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		shape grid.Shape
		want  error
	}{
		{"1d", grid.Shape{5}, nil},
		{"3d", grid.Shape{2, 3, 4}, nil},
		{"nil", nil, grid.ErrInvalidShape},
		{"empty", grid.Shape{}, grid.ErrInvalidShape},
		{"zero extent", grid.Shape{3, 0}, grid.ErrInvalidShape},
		{"negative extent", grid.Shape{-1, 2}, grid.ErrInvalidShape},
		{"overflow", grid.Shape{math.MaxInt / 2, 3}, grid.ErrSizeOverflow},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.shape.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestShape_SizeAndStrides checks row-major strides and the total size.
func TestShape_SizeAndStrides(t *testing.T) {
	s := grid.Shape{2, 3, 4}
	assert.Equal(t, 3, s.NDim())
	assert.Equal(t, 24, s.Size())
	assert.Equal(t, []int{12, 4, 1}, s.Strides())
	assert.Equal(t, 4, s.MaxExtent())

	one := grid.Shape{7}
	assert.Equal(t, []int{1}, one.Strides())
	assert.Equal(t, 7, one.Size())
}

//----------------------------------------------------------------------------//
// Offset / Coordinate
//----------------------------------------------------------------------------//

// TestOffset_Bijection verifies Offset and Coordinate are inverse and that
// Offset maps the grid onto [0, Size) in row-major order.
func TestOffset_Bijection(t *testing.T) {
	s := grid.Shape{3, 2, 5}
	strides := s.Strides()
	seen := make([]bool, s.Size())

	lower, upper := s.Bounds()
	c := append(grid.Coord(nil), lower...)
	next := 0
	for {
		off := grid.Offset(c, strides)
		require.Equal(t, next, off, "row-major visit order at %v", c)
		require.False(t, seen[off], "offset %d hit twice", off)
		seen[off] = true
		assert.Equal(t, c, s.Coordinate(off, nil), "Coordinate(%d)", off)
		next++
		if !grid.Advance(c, lower, upper) {
			break
		}
	}
	assert.Equal(t, s.Size(), next)
	assert.Equal(t, lower, c, "Advance must reset to lower after wrapping")
}

// TestCoordinate_ReusesDst ensures a correctly sized dst is written in place.
func TestCoordinate_ReusesDst(t *testing.T) {
	s := grid.Shape{4, 4}
	dst := make(grid.Coord, 2)
	got := s.Coordinate(9, dst)
	assert.Equal(t, grid.Coord{2, 1}, got)
	assert.Same(t, &dst[0], &got[0])
}

//----------------------------------------------------------------------------//
// Add / InBounds / SquaredNorm
//----------------------------------------------------------------------------//

func TestAdd(t *testing.T) {
	a := grid.Coord{1, -2, 3}
	b := grid.Coord{-1, 5, 0}
	assert.Equal(t, grid.Coord{0, 3, 3}, grid.Add(a, b))
	assert.Equal(t, grid.Coord{1, -2, 3}, a, "Add must not mutate its inputs")

	grid.AddTo(a, a, b)
	assert.Equal(t, grid.Coord{0, 3, 3}, a, "AddTo may alias its first operand")
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	s := grid.Shape{3, 2}

	for _, c := range []grid.Coord{{0, 0}, {2, 1}, {1, 0}} {
		assert.True(t, s.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range []grid.Coord{{-1, 0}, {3, 0}, {0, 2}, {2, -1}} {
		assert.False(t, s.InBounds(c), "InBounds(%v)", c)
	}
}

func TestSquaredNorm(t *testing.T) {
	assert.Equal(t, 0.0, grid.SquaredNorm(grid.Coord{0, 0, 0}))
	assert.Equal(t, 14.0, grid.SquaredNorm(grid.Coord{1, -2, 3}))
	assert.Equal(t, 25.0, grid.SquaredNorm(grid.Coord{-5}))
}

//----------------------------------------------------------------------------//
// Advance
//----------------------------------------------------------------------------//

// TestAdvance_SymmetricWindow enumerates a [-1,1]² window and checks order.
func TestAdvance_SymmetricWindow(t *testing.T) {
	lower := grid.Coord{-1, -1}
	upper := grid.Coord{1, 1}
	c := append(grid.Coord(nil), lower...)

	var got []grid.Coord
	for {
		got = append(got, append(grid.Coord(nil), c...))
		if !grid.Advance(c, lower, upper) {
			break
		}
	}

	want := []grid.Coord{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 0}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	assert.Equal(t, want, got)
}

// TestAdvance_SinglePoint ensures a degenerate box yields exactly one visit.
func TestAdvance_SinglePoint(t *testing.T) {
	lower := grid.Coord{0, 0, 0}
	upper := grid.Coord{0, 0, 0}
	c := grid.Coord{0, 0, 0}
	assert.False(t, grid.Advance(c, lower, upper))
	assert.Equal(t, lower, c)
}

// TestAdvance_AsymmetricBox checks a clipped box such as a window at a corner.
func TestAdvance_AsymmetricBox(t *testing.T) {
	lower := grid.Coord{0, -2}
	upper := grid.Coord{1, 0}
	c := append(grid.Coord(nil), lower...)
	count := 1
	for grid.Advance(c, lower, upper) {
		count++
	}
	assert.Equal(t, 2*3, count)
}
