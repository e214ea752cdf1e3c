// Copyright 2025 DSRT Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loader loads the DSRT kernel for host programs.
//
// This package wraps internal/host and exports a clean public API for
// running dsrt.wasm, with a native fallback when the module is unavailable.
//
// Example usage:
//
//	import (
//	    "github.com/dsrt-go/dsrt/loader"
//	    "github.com/dsrt-go/dsrt/vecmath"
//	)
//
//	k, err := loader.Load(ctx, loader.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer k.Close(ctx)
//
//	fmt.Println(k.Name()) // "wasm" or "native"
//	n, err := k.Normalize(ctx, vecmath.Vec3{3, 4, 0})
package loader

import (
	"context"

	"github.com/dsrt-go/dsrt/internal/host"
)

// Version is the DSRT library version.
const Version = host.Version

// Kernel is the host-side view of the DSRT operations.
type Kernel = host.Kernel

// Options controls how Load locates the module.
type Options = host.Options

// Errors reported while loading a module.
var (
	ErrModuleNotFound = host.ErrModuleNotFound
	ErrMissingExport  = host.ErrMissingExport
)

// DefaultOptions returns options for cdn/v1/dsrt.wasm, honouring the
// DSRT_WASM_DIR environment variable.
func DefaultOptions() Options {
	return host.DefaultOptions()
}

// Load returns a kernel backed by dsrt.wasm, or the native kernel when the
// module cannot be loaded and opts.RequireWASM is false.
func Load(ctx context.Context, opts Options) (Kernel, error) {
	return host.Load(ctx, opts)
}

// LoadWASM loads the module at path without falling back.
func LoadWASM(ctx context.Context, path string) (Kernel, error) {
	k, err := host.LoadWASM(ctx, path)
	if err != nil {
		return nil, err
	}
	return k, nil
}

// Native returns the in-process kernel.
func Native() Kernel {
	return host.Native()
}
