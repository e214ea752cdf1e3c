package host

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/dsrt-go/dsrt/internal/abi"
	"github.com/dsrt-go/dsrt/internal/kernel"
)

// WASMKernel runs the kernel inside a dsrt.wasm module.
//
// Buffers are staged in the module's scratch region, so calls are
// serialised with a mutex.
type WASMKernel struct {
	runtime wazero.Runtime
	module  api.Module
	fns     map[string]api.Function
	scratch uint32

	mu     sync.Mutex
	closed bool
}

// LoadWASM reads the module at path and instantiates it.
func LoadWASM(ctx context.Context, path string) (*WASMKernel, error) {
	bin, err := os.ReadFile(path) //nolint:gosec // G304: path comes from trusted configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, path)
		}
		return nil, fmt.Errorf("host: failed to read %s: %w", path, err)
	}
	return LoadWASMBytes(ctx, bin)
}

// LoadWASMBytes instantiates a module from its binary encoding.
func LoadWASMBytes(ctx context.Context, bin []byte) (k *WASMKernel, err error) {
	r := wazero.NewRuntime(ctx)
	defer func() {
		if err != nil {
			_ = r.Close(ctx)
		}
	}()

	compiled, err := r.CompileModule(ctx, bin)
	if err != nil {
		return nil, fmt.Errorf("host: failed to compile module: %w", err)
	}

	required := append(slices.Clone(abi.Symbols), abi.SymScratch)
	exported := compiled.ExportedFunctions()
	for _, sym := range required {
		if _, ok := exported[sym]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingExport, sym)
		}
	}

	wasi_snapshot_preview1.MustInstantiate(ctx, r)

	// Go reactors export _initialize; wazero skips start functions the
	// module does not export.
	cfg := wazero.NewModuleConfig().
		WithName("dsrt").
		WithStartFunctions("_initialize")

	mod, err := r.InstantiateModule(ctx, compiled, cfg)
	if err != nil {
		return nil, fmt.Errorf("host: failed to instantiate module: %w", err)
	}

	k = &WASMKernel{
		runtime: r,
		module:  mod,
		fns:     make(map[string]api.Function, len(required)),
	}
	for _, sym := range required {
		k.fns[sym] = mod.ExportedFunction(sym)
	}

	res, err := k.fns[abi.SymScratch].Call(ctx)
	if err != nil {
		return nil, fmt.Errorf("host: scratch: %w", err)
	}
	k.scratch = api.DecodeU32(res[0])

	// The scratch region must hold three matrices.
	if _, ok := mod.Memory().Read(k.scratch, abi.ScratchLen*abi.ElemSize); !ok {
		return nil, fmt.Errorf("%w: scratch at %#x", ErrMemoryAccess, k.scratch)
	}

	return k, nil
}

// Name implements Kernel.
func (k *WASMKernel) Name() string { return "wasm" }

// call invokes sym with k.mu held.
func (k *WASMKernel) call(ctx context.Context, sym string, params ...uint64) ([]uint64, error) {
	if k.closed {
		return nil, ErrClosed
	}
	res, err := k.fns[sym].Call(ctx, params...)
	if err != nil {
		return nil, fmt.Errorf("host: %s: %w", sym, err)
	}
	return res, nil
}

func (k *WASMKernel) scalar(ctx context.Context, sym string, args ...float64) (float64, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	params := make([]uint64, len(args))
	for i, a := range args {
		params[i] = api.EncodeF64(a)
	}
	res, err := k.call(ctx, sym, params...)
	if err != nil {
		return 0, err
	}
	return api.DecodeF64(res[0]), nil
}

func (k *WASMKernel) slot(s int) uint32 {
	return k.scratch + abi.ScratchOffset(s)
}

func (k *WASMKernel) write(slot int, vals []float64) error {
	mem := k.module.Memory()
	base := k.slot(slot)
	for i, v := range vals {
		//nolint:gosec // G115: i is bounded by the 16-element slot
		if !mem.WriteFloat64Le(base+uint32(i*abi.ElemSize), v) {
			return fmt.Errorf("%w: write at %#x", ErrMemoryAccess, base)
		}
	}
	return nil
}

func (k *WASMKernel) read(slot int, out []float64) error {
	mem := k.module.Memory()
	base := k.slot(slot)
	for i := range out {
		//nolint:gosec // G115: i is bounded by the 16-element slot
		v, ok := mem.ReadFloat64Le(base + uint32(i*abi.ElemSize))
		if !ok {
			return fmt.Errorf("%w: read at %#x", ErrMemoryAccess, base)
		}
		out[i] = v
	}
	return nil
}

// Add implements Kernel.
func (k *WASMKernel) Add(ctx context.Context, a, b float64) (float64, error) {
	return k.scalar(ctx, abi.SymAdd, a, b)
}

// Dot3 implements Kernel.
func (k *WASMKernel) Dot3(ctx context.Context, a, b kernel.Vec3) (float64, error) {
	return k.scalar(ctx, abi.SymDot3, a[0], a[1], a[2], b[0], b[1], b[2])
}

// Length3 implements Kernel.
func (k *WASMKernel) Length3(ctx context.Context, v kernel.Vec3) (float64, error) {
	return k.scalar(ctx, abi.SymLength3, v[0], v[1], v[2])
}

// Cross implements Kernel.
func (k *WASMKernel) Cross(ctx context.Context, a, b kernel.Vec3) (kernel.Vec3, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	var out kernel.Vec3
	_, err := k.call(ctx, abi.SymCross,
		api.EncodeF64(a[0]), api.EncodeF64(a[1]), api.EncodeF64(a[2]),
		api.EncodeF64(b[0]), api.EncodeF64(b[1]), api.EncodeF64(b[2]),
		api.EncodeU32(k.slot(abi.ScratchOut)))
	if err != nil {
		return out, err
	}
	err = k.read(abi.ScratchOut, out[:])
	return out, err
}

// Normalize implements Kernel.
func (k *WASMKernel) Normalize(ctx context.Context, v kernel.Vec3) (kernel.Vec3, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	var out kernel.Vec3
	_, err := k.call(ctx, abi.SymNormalize,
		api.EncodeF64(v[0]), api.EncodeF64(v[1]), api.EncodeF64(v[2]),
		api.EncodeU32(k.slot(abi.ScratchOut)))
	if err != nil {
		return out, err
	}
	err = k.read(abi.ScratchOut, out[:])
	return out, err
}

// Mat4Identity implements Kernel.
func (k *WASMKernel) Mat4Identity(ctx context.Context) (kernel.Mat4, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	var out kernel.Mat4
	_, err := k.call(ctx, abi.SymMat4Identity, api.EncodeU32(k.slot(abi.ScratchOut)))
	if err != nil {
		return out, err
	}
	err = k.read(abi.ScratchOut, out[:])
	return out, err
}

// Mat4Transpose implements Kernel.
func (k *WASMKernel) Mat4Transpose(ctx context.Context, m kernel.Mat4) (kernel.Mat4, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	var out kernel.Mat4
	if err := k.write(abi.ScratchA, m[:]); err != nil {
		return out, err
	}
	_, err := k.call(ctx, abi.SymMat4Transpose,
		api.EncodeU32(k.slot(abi.ScratchA)),
		api.EncodeU32(k.slot(abi.ScratchOut)))
	if err != nil {
		return out, err
	}
	err = k.read(abi.ScratchOut, out[:])
	return out, err
}

// Mat4Multiply implements Kernel.
func (k *WASMKernel) Mat4Multiply(ctx context.Context, a, b kernel.Mat4) (kernel.Mat4, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	var out kernel.Mat4
	if err := k.write(abi.ScratchA, a[:]); err != nil {
		return out, err
	}
	if err := k.write(abi.ScratchB, b[:]); err != nil {
		return out, err
	}
	_, err := k.call(ctx, abi.SymMat4Multiply,
		api.EncodeU32(k.slot(abi.ScratchA)),
		api.EncodeU32(k.slot(abi.ScratchB)),
		api.EncodeU32(k.slot(abi.ScratchOut)))
	if err != nil {
		return out, err
	}
	err = k.read(abi.ScratchOut, out[:])
	return out, err
}

// Close implements Kernel.
func (k *WASMKernel) Close(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return nil
	}
	k.closed = true
	return k.runtime.Close(ctx)
}
