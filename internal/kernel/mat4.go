package kernel

import "math"

// Mat4Len is the number of elements in a 4x4 matrix buffer.
const Mat4Len = 16

// Mat4 is a 4x4 matrix in row major order.
//
// m[4*r + c] is the element in the r'th row and c'th column.
type Mat4 [Mat4Len]float64

// Mat4Identity overwrites out with the 4x4 identity matrix.
func Mat4Identity(out []float64) {
	checkLen("mat4Identity", out, Mat4Len)
	for i := 0; i < Mat4Len; i++ {
		out[i] = 0
	}
	out[0], out[5], out[10], out[15] = 1, 1, 1, 1
}

// Mat4Transpose writes the transpose of in into out.
// out may be the same buffer as in.
func Mat4Transpose(in, out []float64) {
	checkLen("mat4Transpose", in, Mat4Len)
	checkLen("mat4Transpose", out, Mat4Len)

	var tmp Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			tmp[c*4+r] = in[r*4+c]
		}
	}
	copy(out, tmp[:])
}

// Mat4Multiply writes a·b into out.
// C[r,c] = sum_k A[r,k] * B[k,c]
// out may alias a or b.
func Mat4Multiply(a, b, out []float64) {
	checkLen("mat4Multiply", a, Mat4Len)
	checkLen("mat4Multiply", b, Mat4Len)
	checkLen("mat4Multiply", out, Mat4Len)

	var tmp Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := float64(0)
			for k := 0; k < 4; k++ {
				sum += a[r*4+k] * b[k*4+c]
			}
			tmp[r*4+c] = sum
		}
	}
	copy(out, tmp[:])
}

// Identity returns the 4x4 identity matrix.
func Identity() (m Mat4) {
	Mat4Identity(m[:])
	return
}

// At returns the element in row r, column c.
func (m Mat4) At(r, c int) float64 {
	return m[r*4+c]
}

// Multiply returns m·o.
func (m Mat4) Multiply(o Mat4) (out Mat4) {
	Mat4Multiply(m[:], o[:], out[:])
	return
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() (out Mat4) {
	Mat4Transpose(m[:], out[:])
	return
}

// ApproxEqual reports whether every element of m is within tol of o.
func (m Mat4) ApproxEqual(o Mat4, tol float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > tol {
			return false
		}
	}
	return true
}
