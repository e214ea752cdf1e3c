package cpu

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsrt-go/dsrt/internal/kernel"
	"github.com/dsrt-go/dsrt/internal/parallel"
)

// Helper to create test backend.
func newTestBackend() *CPUBackend {
	return NewWithConfig(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1})
}

func TestName(t *testing.T) {
	assert.Equal(t, "CPU", New().Name())
	assert.Equal(t, parallel.DefaultConfig(), New().Config())
}

func TestMat4MultiplyBatch(t *testing.T) {
	backend := newTestBackend()
	r := rand.New(rand.NewSource(7))

	const count = 100
	a := make([]float64, count*kernel.Mat4Len)
	b := make([]float64, count*kernel.Mat4Len)
	for i := range a {
		a[i] = r.NormFloat64()
		b[i] = r.NormFloat64()
	}

	out := make([]float64, len(a))
	require.NoError(t, backend.Mat4MultiplyBatch(a, b, out))

	for i := 0; i < count; i++ {
		var x, y, want kernel.Mat4
		copy(x[:], a[i*16:])
		copy(y[:], b[i*16:])
		want = x.Multiply(y)
		assert.Equal(t, want[:], out[i*16:(i+1)*16], "block %d", i)
	}
}

func TestMat4MultiplyBatch_Identity(t *testing.T) {
	backend := newTestBackend()
	id := kernel.Identity()

	a := make([]float64, 0, 3*16)
	for i := 0; i < 3; i++ {
		a = append(a, id[:]...)
	}
	out := make([]float64, len(a))
	require.NoError(t, backend.Mat4MultiplyBatch(a, a, out))
	assert.Equal(t, a, out)
}

func TestMat4MultiplyBatch_Errors(t *testing.T) {
	backend := newTestBackend()

	err := backend.Mat4MultiplyBatch(make([]float64, 15), make([]float64, 15), make([]float64, 15))
	assert.EqualError(t, err, "cpu: mat4MultiplyBatch: length 15 is not a multiple of 16")

	err = backend.Mat4MultiplyBatch(make([]float64, 16), make([]float64, 32), make([]float64, 16))
	assert.Error(t, err)
}

func TestNormalizeBatch(t *testing.T) {
	backend := newTestBackend()

	in := []float64{0, 0, 0, 10, 0, 0}
	out := make([]float64, len(in))
	require.NoError(t, backend.NormalizeBatch(in, out))
	assert.Equal(t, []float64{0, 0, 0, 1, 0, 0}, out)

	assert.Error(t, backend.NormalizeBatch(make([]float64, 4), make([]float64, 4)))
}

func BenchmarkMat4MultiplyBatch(b *testing.B) {
	backend := New()
	const count = 4096
	x := make([]float64, count*16)
	for i := range x {
		x[i] = float64(i%7) - 3
	}
	out := make([]float64, len(x))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = backend.Mat4MultiplyBatch(x, x, out)
	}
}
