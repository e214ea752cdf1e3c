package host

import (
	"context"

	"github.com/dsrt-go/dsrt/internal/kernel"
)

// Version is the DSRT library version reported to hosts.
const Version = "1.0.0"

// Kernel is the host-side view of the DSRT operations.
//
// Implementations:
//   - native: direct calls into internal/kernel, never fails
//   - wasm: calls into a dsrt.wasm module through wazero
type Kernel interface {
	// Name identifies the implementation ("native" or "wasm").
	Name() string

	Add(ctx context.Context, a, b float64) (float64, error)
	Dot3(ctx context.Context, a, b kernel.Vec3) (float64, error)
	Length3(ctx context.Context, v kernel.Vec3) (float64, error)
	Cross(ctx context.Context, a, b kernel.Vec3) (kernel.Vec3, error)
	Normalize(ctx context.Context, v kernel.Vec3) (kernel.Vec3, error)
	Mat4Identity(ctx context.Context) (kernel.Mat4, error)
	Mat4Transpose(ctx context.Context, m kernel.Mat4) (kernel.Mat4, error)
	Mat4Multiply(ctx context.Context, a, b kernel.Mat4) (kernel.Mat4, error)

	// Close releases any runtime resources. It is safe to call more than once.
	Close(ctx context.Context) error
}

type nativeKernel struct{}

// Native returns the in-process kernel.
func Native() Kernel {
	return nativeKernel{}
}

func (nativeKernel) Name() string { return "native" }

func (nativeKernel) Add(_ context.Context, a, b float64) (float64, error) {
	return kernel.Add(a, b), nil
}

func (nativeKernel) Dot3(_ context.Context, a, b kernel.Vec3) (float64, error) {
	return a.Dot(b), nil
}

func (nativeKernel) Length3(_ context.Context, v kernel.Vec3) (float64, error) {
	return v.Length(), nil
}

func (nativeKernel) Cross(_ context.Context, a, b kernel.Vec3) (kernel.Vec3, error) {
	return a.Cross(b), nil
}

func (nativeKernel) Normalize(_ context.Context, v kernel.Vec3) (kernel.Vec3, error) {
	return v.Normalize(), nil
}

func (nativeKernel) Mat4Identity(_ context.Context) (kernel.Mat4, error) {
	return kernel.Identity(), nil
}

func (nativeKernel) Mat4Transpose(_ context.Context, m kernel.Mat4) (kernel.Mat4, error) {
	return m.Transpose(), nil
}

func (nativeKernel) Mat4Multiply(_ context.Context, a, b kernel.Mat4) (kernel.Mat4, error) {
	return a.Multiply(b), nil
}

func (nativeKernel) Close(context.Context) error { return nil }
