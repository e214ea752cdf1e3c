// Copyright 2025 DSRT Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vecmath provides the DSRT 3-vector and 4x4 matrix primitives.
//
// # Overview
//
// Scalar-argument functions (Dot3, Cross, ...) match the exported binary
// interface one to one and are the portable baseline. Vec3 and Mat4 methods
// are value-typed conveniences over the same kernels.
//
// # Basic Usage
//
//	import "github.com/dsrt-go/dsrt/vecmath"
//
//	func main() {
//	    var out [3]float64
//	    vecmath.Cross(1, 0, 0, 0, 1, 0, out[:]) // (0, 0, 1)
//
//	    m := vecmath.Identity()
//	    p := m.Multiply(m)
//	}
//
// # Layout
//
// Mat4 is row-major: element (r, c) is at index r*4+c.
//
// # Aliasing
//
// Mat4Transpose and Mat4Multiply accept an out buffer that aliases their
// inputs.
package vecmath
