package kernel

import "math"

// Vec3Len is the number of elements in a 3-vector buffer.
const Vec3Len = 3

// Vec3 is a 3-component vector (x, y, z).
type Vec3 [Vec3Len]float64

// Cross writes a × b into out using the right-handed rule.
func Cross(ax, ay, az, bx, by, bz float64, out []float64) {
	checkLen("cross", out, Vec3Len)
	out[0] = ay*bz - az*by
	out[1] = az*bx - ax*bz
	out[2] = ax*by - ay*bx
}

// Normalize writes (x, y, z) scaled to unit length into out.
// The zero vector normalizes to (0, 0, 0) instead of NaN.
func Normalize(x, y, z float64, out []float64) {
	checkLen("normalize", out, Vec3Len)
	l := Length3(x, y, z)
	if l == 0 {
		out[0], out[1], out[2] = 0, 0, 0
		return
	}
	out[0] = x / l
	out[1] = y / l
	out[2] = z / l
}

// X returns the x component.
func (v Vec3) X() float64 { return v[0] }

// Y returns the y component.
func (v Vec3) Y() float64 { return v[1] }

// Z returns the z component.
func (v Vec3) Z() float64 { return v[2] }

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns s ⋅ v.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Dot returns v ⋅ w.
func (v Vec3) Dot(w Vec3) float64 {
	return Dot3(v[0], v[1], v[2], w[0], w[1], w[2])
}

// Cross returns v × w.
func (v Vec3) Cross(w Vec3) (u Vec3) {
	Cross(v[0], v[1], v[2], w[0], w[1], w[2], u[:])
	return
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 {
	return Length3(v[0], v[1], v[2])
}

// Normalize returns v scaled to unit length, or the zero vector if v is zero.
func (v Vec3) Normalize() (u Vec3) {
	Normalize(v[0], v[1], v[2], u[:])
	return
}

// Clone returns a copy of v.
func (v Vec3) Clone() Vec3 {
	return v
}

// ApproxEqual reports whether every component of v is within tol of w.
func (v Vec3) ApproxEqual(w Vec3, tol float64) bool {
	for i := range v {
		if math.Abs(v[i]-w[i]) > tol {
			return false
		}
	}
	return true
}
