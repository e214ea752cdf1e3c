//go:build windows

// Copyright 2025 DSRT Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU batch backend.
//
// WebGPU compute runs on:
//   - Windows (via Dawn/D3D12)
//   - macOS (via Dawn/Metal)
//   - Linux (via Dawn/Vulkan)
//
// WGSL has no 64-bit floats, so batches are computed in float32.
//
// Example:
//
//	if webgpu.IsAvailable() {
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//	    err = gpu.Mat4MultiplyBatch(a, b, out)
//	}
package webgpu

import (
	internalwebgpu "github.com/dsrt-go/dsrt/internal/backend/webgpu"
	"github.com/dsrt-go/dsrt/vecmath"
)

// Backend represents the WebGPU batch backend.
type Backend = internalwebgpu.Backend

// Compile-time check that Backend implements vecmath.Backend.
var _ vecmath.Backend = (*Backend)(nil)

// New creates a new WebGPU backend.
//
// Call Release() when done to free GPU resources. Returns an error if
// WebGPU initialization fails (e.g., no compatible GPU or missing wgpu_native).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
