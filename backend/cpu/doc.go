// Copyright 2025 DSRT Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU batch backend.
//
// # Overview
//
// The CPU backend multiplies batches of 4x4 matrices and normalizes batches
// of 3-vectors:
//   - Pure Go implementation (no CGO)
//   - float64 precision, bit-identical to the scalar kernel
//   - Goroutine fan-out over large batches
//
// # Basic Usage
//
//	import "github.com/dsrt-go/dsrt/backend/cpu"
//
//	func main() {
//	    backend := cpu.New()
//	    out := make([]float64, len(a))
//	    if err := backend.Mat4MultiplyBatch(a, b, out); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// For float32 GPU batches, see the webgpu package (windows).
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use as long as calls do not share
// output buffers.
package cpu
