package abi

import (
	"unsafe"

	"github.com/dsrt-go/dsrt/internal/kernel"
)

// Scratch region layout, in float64 elements.
const (
	ScratchA   = 0
	ScratchB   = ScratchA + kernel.Mat4Len
	ScratchOut = ScratchB + kernel.Mat4Len
	ScratchLen = ScratchOut + kernel.Mat4Len
)

// ElemSize is the size in bytes of one buffer element.
const ElemSize = 8

// scratch is a fixed staging area for hosts that cannot allocate inside the
// guest. It is shared: hosts must serialise calls that use it.
var scratch [ScratchLen]float64

// Scratch returns the address of the scratch region.
func Scratch() unsafe.Pointer {
	return unsafe.Pointer(&scratch[0])
}

// ScratchOffset returns the byte offset of slot (ScratchA, ScratchB or
// ScratchOut) relative to the start of the scratch region.
func ScratchOffset(slot int) uint32 {
	//nolint:gosec // G115: slot is one of the non-negative layout constants
	return uint32(slot * ElemSize)
}
