package cpu

import (
	"github.com/dsrt-go/dsrt/internal/kernel"
)

// Mat4MultiplyBatch multiplies matching 4x4 blocks of a and b into out.
// out may alias a or b.
func (cpu *CPUBackend) Mat4MultiplyBatch(a, b, out []float64) error {
	if _, err := kernel.CheckBatch("cpu: mat4MultiplyBatch", kernel.Mat4Len, a, b, out); err != nil {
		return err
	}
	kernel.Mat4MultiplyBatch(a, b, out, cpu.cfg)
	return nil
}

// NormalizeBatch normalizes every 3-element block of in into out.
func (cpu *CPUBackend) NormalizeBatch(in, out []float64) error {
	if _, err := kernel.CheckBatch("cpu: normalizeBatch", kernel.Vec3Len, in, out); err != nil {
		return err
	}
	kernel.NormalizeBatch(in, out, cpu.cfg)
	return nil
}
