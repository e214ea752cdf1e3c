//go:build cgo

// Command dsrt-cabi builds the DSRT kernel as a C shared library.
//
// Build:
//
//	go build -buildmode=c-shared -o libdsrt.so ./cmd/dsrt-cabi
//
// The generated header declares the same symbols as the WebAssembly module.
// Buffer arguments are double pointers owned by the caller.
package main

/*
#include <stddef.h>
*/
import "C"

import (
	"unsafe"

	"github.com/dsrt-go/dsrt/internal/abi"
)

func main() {}

//export add
func add(a, b C.double) C.double {
	return C.double(abi.Add(float64(a), float64(b)))
}

//export dot3
func dot3(ax, ay, az, bx, by, bz C.double) C.double {
	return C.double(abi.Dot3(float64(ax), float64(ay), float64(az), float64(bx), float64(by), float64(bz)))
}

//export length3
func length3(x, y, z C.double) C.double {
	return C.double(abi.Length3(float64(x), float64(y), float64(z)))
}

//export cross
func cross(ax, ay, az, bx, by, bz C.double, out *C.double) {
	abi.Cross(float64(ax), float64(ay), float64(az), float64(bx), float64(by), float64(bz), unsafe.Pointer(out))
}

//export normalize
func normalize(x, y, z C.double, out *C.double) {
	abi.Normalize(float64(x), float64(y), float64(z), unsafe.Pointer(out))
}

//export mat4Identity
func mat4Identity(out *C.double) {
	abi.Mat4Identity(unsafe.Pointer(out))
}

//export mat4Transpose
func mat4Transpose(in, out *C.double) {
	abi.Mat4Transpose(unsafe.Pointer(in), unsafe.Pointer(out))
}

//export mat4Multiply
func mat4Multiply(a, b, out *C.double) {
	abi.Mat4Multiply(unsafe.Pointer(a), unsafe.Pointer(b), unsafe.Pointer(out))
}
