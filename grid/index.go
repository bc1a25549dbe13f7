// SPDX-License-Identifier: MIT

package grid

// Offset returns the flat storage offset of c, Σ c[i]*strides[i].
// c and strides must have the same length. No bounds check is done.
// Complexity: O(ndim).
func Offset(c Coord, strides []int) int {
	off := 0
	for i, v := range c {
		off += v * strides[i]
	}

	return off
}

// Add returns the element-wise sum a+b as a new Coord.
func Add(a, b Coord) Coord {
	return AddTo(make(Coord, len(a)), a, b)
}

// AddTo writes a+b into dst and returns dst. All three must share a length;
// dst may alias a or b.
func AddTo(dst, a, b Coord) Coord {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}

	return dst
}

// SquaredNorm returns Σ c[i]², the squared Euclidean length of c.
func SquaredNorm(c Coord) float64 {
	var sum float64
	for _, v := range c {
		f := float64(v)
		sum += f * f
	}

	return sum
}

// Advance steps c to the next coordinate of the inclusive box
// [lower, upper] in row-major order: the last axis is incremented and
// overflow carries into earlier axes.
//
// It returns false when the counter wraps past its last value; c is then
// reset to lower, so a loop of the form
//
//	copy(c, lower)
//	for {
//		visit(c)
//		if !Advance(c, lower, upper) {
//			break
//		}
//	}
//
// visits every point of the box exactly once. Every lower[i] must be
// ≤ upper[i].
// Complexity: O(1) amortized, O(ndim) worst case.
func Advance(c, lower, upper Coord) bool {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i] < upper[i] {
			c[i]++
			return true
		}
		c[i] = lower[i]
	}

	return false
}

