//go:build wasip1

// Command dsrt-wasm builds the DSRT kernel as a WebAssembly reactor module.
//
// Build:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o cdn/v1/dsrt.wasm ./cmd/dsrt-wasm
//
// Hosts call _initialize once, then any export. Buffer arguments are offsets
// into the module's linear memory; hosts without their own allocator stage
// buffers in the region returned by scratch.
package main

import (
	"unsafe"

	"github.com/dsrt-go/dsrt/internal/abi"
)

func main() {}

//go:wasmexport add
func add(a, b float64) float64 {
	return abi.Add(a, b)
}

//go:wasmexport dot3
func dot3(ax, ay, az, bx, by, bz float64) float64 {
	return abi.Dot3(ax, ay, az, bx, by, bz)
}

//go:wasmexport length3
func length3(x, y, z float64) float64 {
	return abi.Length3(x, y, z)
}

//go:wasmexport cross
func cross(ax, ay, az, bx, by, bz float64, out unsafe.Pointer) {
	abi.Cross(ax, ay, az, bx, by, bz, out)
}

//go:wasmexport normalize
func normalize(x, y, z float64, out unsafe.Pointer) {
	abi.Normalize(x, y, z, out)
}

//go:wasmexport mat4Identity
func mat4Identity(out unsafe.Pointer) {
	abi.Mat4Identity(out)
}

//go:wasmexport mat4Transpose
func mat4Transpose(in, out unsafe.Pointer) {
	abi.Mat4Transpose(in, out)
}

//go:wasmexport mat4Multiply
func mat4Multiply(a, b, out unsafe.Pointer) {
	abi.Mat4Multiply(a, b, out)
}

//go:wasmexport scratch
func scratch() unsafe.Pointer {
	return abi.Scratch()
}
