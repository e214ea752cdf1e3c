package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsrt-go/dsrt/internal/parallel"
)

func TestCheckBatch(t *testing.T) {
	n, err := CheckBatch("op", 16, make([]float64, 32), make([]float64, 32))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = CheckBatch("op", 16, make([]float64, 17))
	assert.EqualError(t, err, "op: length 17 is not a multiple of 16")

	_, err = CheckBatch("op", 3, make([]float64, 6), make([]float64, 3))
	assert.EqualError(t, err, "op: buffer 1 has length 3, want 6")

	n, err = CheckBatch("op", 3)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMat4MultiplyBatch(t *testing.T) {
	configs := map[string]parallel.Config{
		"sequential": parallel.Sequential(),
		"parallel":   {Enabled: true, NumWorkers: 4, MinChunkSize: 1},
	}

	r := newRand()
	const count = 37
	a := make([]float64, count*Mat4Len)
	b := make([]float64, count*Mat4Len)
	for i := range a {
		a[i] = r.Float64()
		b[i] = r.Float64()
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			out := make([]float64, len(a))
			Mat4MultiplyBatch(a, b, out, cfg)

			for i := 0; i < count; i++ {
				off := i * Mat4Len
				want := make([]float64, Mat4Len)
				Mat4Multiply(a[off:off+Mat4Len], b[off:off+Mat4Len], want)
				assert.Equal(t, want, out[off:off+Mat4Len], "block %d", i)
			}
		})
	}
}

func TestMat4MultiplyBatch_Mismatch(t *testing.T) {
	assert.Panics(t, func() {
		Mat4MultiplyBatch(make([]float64, 16), make([]float64, 32), make([]float64, 16), parallel.Sequential())
	})
}

func TestNormalizeBatch(t *testing.T) {
	in := []float64{
		3, 4, 0,
		0, 0, 0,
		0, 0, -2,
	}
	out := make([]float64, len(in))
	NormalizeBatch(in, out, parallel.Config{Enabled: true, NumWorkers: 2, MinChunkSize: 1})

	want := []float64{
		0.6, 0.8, 0,
		0, 0, 0,
		0, 0, -1,
	}
	assert.InDeltaSlice(t, want, out, epsilon)

	// In place.
	NormalizeBatch(in, in, parallel.Sequential())
	assert.InDeltaSlice(t, want, in, epsilon)
}
