//go:build windows

package webgpu

import (
	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/dsrt-go/dsrt/internal/kernel"
)

// Mat4MultiplyBatch multiplies matching 4x4 blocks of a and b into out on
// the GPU. Precision is float32.
func (b *Backend) Mat4MultiplyBatch(a, other, out []float64) error {
	count, err := kernel.CheckBatch("webgpu: mat4MultiplyBatch", kernel.Mat4Len, a, other, out)
	if err != nil || count == 0 {
		return err
	}

	size := uint64(len(a) * 4)
	bufferA := b.createBuffer(toFloat32Bytes(a), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferA.Release()
	bufferB := b.createBuffer(toFloat32Bytes(other), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferB.Release()
	bufferResult := b.createOutputBuffer(size)
	defer bufferResult.Release()
	//nolint:gosec // G115: count is bounded by the buffer length
	bufferParams := b.createUniformBuffer(uint32(count))
	defer bufferParams.Release()

	b.dispatch("mat4MultiplyBatch", mat4MultiplyBatchShader, len(a), []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferA, 0, size),
		wgpu.BufferBindingEntry(1, bufferB, 0, size),
		wgpu.BufferBindingEntry(2, bufferResult, 0, size),
		wgpu.BufferBindingEntry(3, bufferParams, 0, 16),
	})

	data, err := b.readBuffer(bufferResult, size)
	if err != nil {
		return err
	}
	fromFloat32Bytes(out, data)
	return nil
}

// NormalizeBatch normalizes every 3-element block of in into out on the GPU.
// Precision is float32.
func (b *Backend) NormalizeBatch(in, out []float64) error {
	count, err := kernel.CheckBatch("webgpu: normalizeBatch", kernel.Vec3Len, in, out)
	if err != nil || count == 0 {
		return err
	}

	size := uint64(len(in) * 4)
	bufferInput := b.createBuffer(toFloat32Bytes(in), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferInput.Release()
	bufferResult := b.createOutputBuffer(size)
	defer bufferResult.Release()
	//nolint:gosec // G115: count is bounded by the buffer length
	bufferParams := b.createUniformBuffer(uint32(count))
	defer bufferParams.Release()

	b.dispatch("normalizeBatch", normalizeBatchShader, count, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferInput, 0, size),
		wgpu.BufferBindingEntry(1, bufferResult, 0, size),
		wgpu.BufferBindingEntry(2, bufferParams, 0, 16),
	})

	data, err := b.readBuffer(bufferResult, size)
	if err != nil {
		return err
	}
	fromFloat32Bytes(out, data)
	return nil
}
