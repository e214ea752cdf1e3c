// Copyright 2025 DSRT Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/dsrt-go/dsrt/internal/backend/cpu"
	"github.com/dsrt-go/dsrt/internal/parallel"
	"github.com/dsrt-go/dsrt/vecmath"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements vecmath.Backend.
var _ vecmath.Backend = (*Backend)(nil)

// New creates a new CPU backend using one worker per CPU.
func New() *Backend {
	return internalcpu.New()
}

// NewWithWorkers creates a CPU backend limited to n workers.
// n == 1 runs batches on the calling goroutine.
func NewWithWorkers(n int) *Backend {
	return internalcpu.NewWithConfig(parallel.DefaultConfig().WithWorkers(n))
}
