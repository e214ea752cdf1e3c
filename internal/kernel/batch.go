package kernel

import (
	"fmt"

	"github.com/dsrt-go/dsrt/internal/parallel"
)

// Backend runs kernels over flat batches of matrices or vectors.
//
// Implementations:
//   - CPU: internal/backend/cpu, goroutine fan-out over this package
//   - WebGPU: internal/backend/webgpu, float32 compute shader (windows)
type Backend interface {
	// Name returns a short human-readable backend name.
	Name() string

	// Mat4MultiplyBatch multiplies every 16-element block of a by the
	// matching block of b and writes the products into out.
	Mat4MultiplyBatch(a, b, out []float64) error

	// NormalizeBatch normalizes every 3-element block of in into out.
	NormalizeBatch(in, out []float64) error
}

// CheckBatch validates that the buffers hold the same whole number of
// width-element blocks and returns the block count.
func CheckBatch(op string, width int, bufs ...[]float64) (int, error) {
	if len(bufs) == 0 {
		return 0, nil
	}
	n := len(bufs[0])
	if n%width != 0 {
		return 0, fmt.Errorf("%s: length %d is not a multiple of %d", op, n, width)
	}
	for i, buf := range bufs[1:] {
		if len(buf) != n {
			return 0, fmt.Errorf("%s: buffer %d has length %d, want %d", op, i+1, len(buf), n)
		}
	}
	return n / width, nil
}

// Mat4MultiplyBatch multiplies matching 4x4 blocks of a and b into out.
// All three buffers must have the same length, a multiple of 16.
func Mat4MultiplyBatch(a, b, out []float64, cfg parallel.Config) {
	if _, err := CheckBatch("mat4MultiplyBatch", Mat4Len, a, b, out); err != nil {
		panic(err.Error())
	}
	parallel.ForBlocks(len(a), Mat4Len, func(off int) {
		end := off + Mat4Len
		Mat4Multiply(a[off:end], b[off:end], out[off:end])
	}, cfg)
}

// NormalizeBatch normalizes every (x, y, z) triple of in into out.
// Both buffers must have the same length, a multiple of 3.
func NormalizeBatch(in, out []float64, cfg parallel.Config) {
	if _, err := CheckBatch("normalizeBatch", Vec3Len, in, out); err != nil {
		panic(err.Error())
	}
	parallel.ForBlocks(len(in), Vec3Len, func(off int) {
		Normalize(in[off], in[off+1], in[off+2], out[off:off+Vec3Len])
	}, cfg)
}
