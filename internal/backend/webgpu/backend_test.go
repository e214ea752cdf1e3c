//go:build windows

package webgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsrt-go/dsrt/internal/kernel"
)

// newTestBackend skips the test when no GPU is present.
func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	backend, err := New()
	if err != nil {
		t.Logf("WebGPU not available: %v", err)
		t.Skip("WebGPU not available on this system")
	}
	t.Cleanup(backend.Release)
	return backend
}

func TestIsAvailable(t *testing.T) {
	available := IsAvailable()
	t.Logf("WebGPU available: %v", available)
}

func TestNew(t *testing.T) {
	backend := newTestBackend(t)
	assert.Equal(t, "WebGPU", backend.Name())
}

func TestMat4MultiplyBatch(t *testing.T) {
	backend := newTestBackend(t)

	m := kernel.Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	id := kernel.Identity()

	a := append(append([]float64{}, m[:]...), id[:]...)
	b := append(append([]float64{}, id[:]...), m[:]...)
	out := make([]float64, len(a))

	require.NoError(t, backend.Mat4MultiplyBatch(a, b, out))
	assert.InDeltaSlice(t, m[:], out[:16], 1e-5)
	assert.InDeltaSlice(t, m[:], out[16:], 1e-5)
}

func TestNormalizeBatch(t *testing.T) {
	backend := newTestBackend(t)

	in := []float64{3, 4, 0, 0, 0, 0}
	out := make([]float64, len(in))
	require.NoError(t, backend.NormalizeBatch(in, out))
	assert.InDeltaSlice(t, []float64{0.6, 0.8, 0, 0, 0, 0}, out, 1e-6)
}

func TestBatch_LengthErrors(t *testing.T) {
	backend := newTestBackend(t)
	assert.Error(t, backend.Mat4MultiplyBatch(make([]float64, 8), make([]float64, 8), make([]float64, 8)))
	assert.Error(t, backend.NormalizeBatch(make([]float64, 3), make([]float64, 6)))
}

func TestFloat32RoundTrip(t *testing.T) {
	src := []float64{0, 1.5, -2.25, 1e10}
	dst := make([]float64, len(src))
	fromFloat32Bytes(dst, toFloat32Bytes(src))
	assert.Equal(t, src, dst)
}
