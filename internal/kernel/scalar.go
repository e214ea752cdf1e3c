package kernel

import (
	"fmt"
	"math"
)

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Dot3 returns the dot product of (ax, ay, az) and (bx, by, bz).
//
// The six-scalar form is the portable baseline used across the binary
// boundary; Vec3.Dot is the value form.
func Dot3(ax, ay, az, bx, by, bz float64) float64 {
	return ax*bx + ay*by + az*bz
}

// Length3 returns the Euclidean norm of (x, y, z).
// Very large components may overflow to +Inf.
func Length3(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

// checkLen panics if buf cannot hold n values.
func checkLen(op string, buf []float64, n int) {
	if len(buf) < n {
		panic(fmt.Sprintf("%s: buffer too small: need %d, got %d", op, n, len(buf)))
	}
}
