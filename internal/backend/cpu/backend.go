// Package cpu implements the batch kernel backend on the CPU.
package cpu

import (
	"github.com/dsrt-go/dsrt/internal/kernel"
	"github.com/dsrt-go/dsrt/internal/parallel"
)

// CPUBackend runs batch kernels on goroutines.
type CPUBackend struct {
	cfg parallel.Config
}

// Compile-time check that CPUBackend implements kernel.Backend.
var _ kernel.Backend = (*CPUBackend)(nil)

// New creates a CPU backend with parallel.DefaultConfig.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with an explicit parallel config.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{cfg: cfg}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Config returns the parallel config used for batches.
func (cpu *CPUBackend) Config() parallel.Config {
	return cpu.cfg
}
