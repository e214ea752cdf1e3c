// Copyright 2025 DSRT Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernel implements the DSRT vector/matrix primitives.
//
// # Overview
//
// Every operation is a pure function over float64 values:
//   - Scalars: Add
//   - 3-vectors: Dot3, Length3, Cross, Normalize
//   - 4x4 matrices: Mat4Identity, Mat4Transpose, Mat4Multiply
//
// Vector and matrix results are written into caller-owned slices. The
// package never allocates output memory and never retains a buffer after a
// call returns.
//
// # Layout
//
// A Vec3 is (x, y, z). A Mat4 is 16 values in row-major order: element
// (r, c) lives at index r*4+c.
//
// # Buffers
//
// Output slices must hold at least 3 (vectors) or 16 (matrices) elements;
// shorter slices panic. Matrix operations stage their result in a local
// temporary, so out may alias any input:
//
//	m := kernel.Identity()
//	kernel.Mat4Multiply(m[:], rot[:], m[:]) // m = m * rot
//
// # Thread Safety
//
// All functions are reentrant and keep no package state. Concurrent calls are
// safe as long as they do not share an output buffer.
package kernel
