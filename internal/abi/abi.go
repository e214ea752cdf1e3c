// Package abi adapts the kernel to the flat calling convention used across
// the binary boundary: float64 scalars in, raw pointers to caller-owned
// float64 buffers for vector and matrix results.
//
// The same functions back the WebAssembly exports (cmd/dsrt-wasm) and the
// C shared-library exports (cmd/dsrt-cabi).
package abi

import (
	"unsafe"

	"github.com/dsrt-go/dsrt/internal/kernel"
)

// Exported symbol names, in the order hosts usually bind them.
const (
	SymAdd           = "add"
	SymDot3          = "dot3"
	SymLength3       = "length3"
	SymCross         = "cross"
	SymNormalize     = "normalize"
	SymMat4Identity  = "mat4Identity"
	SymMat4Transpose = "mat4Transpose"
	SymMat4Multiply  = "mat4Multiply"
	SymScratch       = "scratch"
)

// Symbols lists every kernel symbol a complete module must export.
var Symbols = []string{
	SymAdd,
	SymDot3,
	SymLength3,
	SymCross,
	SymNormalize,
	SymMat4Identity,
	SymMat4Transpose,
	SymMat4Multiply,
}

func vec3(p unsafe.Pointer) []float64 {
	return (*[kernel.Vec3Len]float64)(p)[:]
}

func mat4(p unsafe.Pointer) []float64 {
	return (*[kernel.Mat4Len]float64)(p)[:]
}

// Add returns a + b.
func Add(a, b float64) float64 {
	return kernel.Add(a, b)
}

// Dot3 returns (ax, ay, az) · (bx, by, bz).
func Dot3(ax, ay, az, bx, by, bz float64) float64 {
	return kernel.Dot3(ax, ay, az, bx, by, bz)
}

// Length3 returns |(x, y, z)|.
func Length3(x, y, z float64) float64 {
	return kernel.Length3(x, y, z)
}

// Cross writes a × b to the 3 float64 values at out.
func Cross(ax, ay, az, bx, by, bz float64, out unsafe.Pointer) {
	kernel.Cross(ax, ay, az, bx, by, bz, vec3(out))
}

// Normalize writes the unit vector of (x, y, z), or zero, to out.
func Normalize(x, y, z float64, out unsafe.Pointer) {
	kernel.Normalize(x, y, z, vec3(out))
}

// Mat4Identity writes the identity matrix to the 16 float64 values at out.
func Mat4Identity(out unsafe.Pointer) {
	kernel.Mat4Identity(mat4(out))
}

// Mat4Transpose writes the transpose of in to out. in and out may be equal.
func Mat4Transpose(in, out unsafe.Pointer) {
	kernel.Mat4Transpose(mat4(in), mat4(out))
}

// Mat4Multiply writes a·b to out. out may alias a or b.
func Mat4Multiply(a, b, out unsafe.Pointer) {
	kernel.Mat4Multiply(mat4(a), mat4(b), mat4(out))
}
