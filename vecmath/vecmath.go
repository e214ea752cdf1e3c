// Copyright 2025 DSRT Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vecmath

import (
	"github.com/dsrt-go/dsrt/internal/kernel"
)

// Vec3 is a 3-component vector (x, y, z).
type Vec3 = kernel.Vec3

// Mat4 is a 4x4 matrix in row major order.
type Mat4 = kernel.Mat4

// Backend runs kernels over flat batches.
type Backend = kernel.Backend

// Buffer lengths.
const (
	Vec3Len = kernel.Vec3Len
	Mat4Len = kernel.Mat4Len
)

// Add returns a + b.
func Add(a, b float64) float64 { return kernel.Add(a, b) }

// Dot3 returns (ax, ay, az) · (bx, by, bz).
func Dot3(ax, ay, az, bx, by, bz float64) float64 {
	return kernel.Dot3(ax, ay, az, bx, by, bz)
}

// Length3 returns the Euclidean norm of (x, y, z).
func Length3(x, y, z float64) float64 { return kernel.Length3(x, y, z) }

// Cross writes a × b into out (len >= 3).
func Cross(ax, ay, az, bx, by, bz float64, out []float64) {
	kernel.Cross(ax, ay, az, bx, by, bz, out)
}

// Normalize writes the unit vector of (x, y, z) into out, or (0, 0, 0) for
// the zero vector.
func Normalize(x, y, z float64, out []float64) { kernel.Normalize(x, y, z, out) }

// Mat4Identity writes the identity matrix into out (len >= 16).
func Mat4Identity(out []float64) { kernel.Mat4Identity(out) }

// Mat4Transpose writes the transpose of in into out.
func Mat4Transpose(in, out []float64) { kernel.Mat4Transpose(in, out) }

// Mat4Multiply writes a·b into out.
func Mat4Multiply(a, b, out []float64) { kernel.Mat4Multiply(a, b, out) }

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 { return kernel.Identity() }
