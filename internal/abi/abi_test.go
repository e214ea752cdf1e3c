package abi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsrt-go/dsrt/internal/kernel"
)

func TestScalars(t *testing.T) {
	assert.Equal(t, 5.0, Add(2, 3))
	assert.Equal(t, 32.0, Dot3(1, 2, 3, 4, 5, 6))
	assert.Equal(t, 5.0, Length3(3, 4, 0))
}

func TestCross(t *testing.T) {
	var out [3]float64
	Cross(1, 0, 0, 0, 1, 0, unsafe.Pointer(&out[0]))
	assert.Equal(t, [3]float64{0, 0, 1}, out)
}

func TestNormalize(t *testing.T) {
	out := [3]float64{5, 5, 5}
	Normalize(0, 0, 0, unsafe.Pointer(&out[0]))
	assert.Equal(t, [3]float64{0, 0, 0}, out)

	Normalize(0, 3, 4, unsafe.Pointer(&out[0]))
	assert.InDeltaSlice(t, []float64{0, 0.6, 0.8}, out[:], 1e-12)
}

func TestMatrices(t *testing.T) {
	var id kernel.Mat4
	Mat4Identity(unsafe.Pointer(&id[0]))
	require.Equal(t, kernel.Identity(), id)

	m := kernel.Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	var tr kernel.Mat4
	Mat4Transpose(unsafe.Pointer(&m[0]), unsafe.Pointer(&tr[0]))
	assert.Equal(t, m.Transpose(), tr)

	var prod kernel.Mat4
	Mat4Multiply(unsafe.Pointer(&m[0]), unsafe.Pointer(&id[0]), unsafe.Pointer(&prod[0]))
	assert.Equal(t, m, prod)

	// In place through the same pointer.
	sq := m
	p := unsafe.Pointer(&sq[0])
	Mat4Multiply(p, p, p)
	assert.Equal(t, m.Multiply(m), sq)
}

func TestScratch(t *testing.T) {
	base := Scratch()
	require.NotNil(t, base)

	a := (*kernel.Mat4)(unsafe.Add(base, ScratchOffset(ScratchA)))
	b := (*kernel.Mat4)(unsafe.Add(base, ScratchOffset(ScratchB)))
	out := (*kernel.Mat4)(unsafe.Add(base, ScratchOffset(ScratchOut)))

	*a = kernel.Identity()
	*b = kernel.Mat4{0: 2, 5: 2, 10: 2, 15: 2}
	Mat4Multiply(unsafe.Pointer(a), unsafe.Pointer(b), unsafe.Pointer(out))
	assert.Equal(t, *b, *out)

	assert.Equal(t, uint32(0), ScratchOffset(ScratchA))
	assert.Equal(t, uint32(128), ScratchOffset(ScratchB))
	assert.Equal(t, uint32(256), ScratchOffset(ScratchOut))
	assert.Equal(t, 48, ScratchLen)
}

func TestSymbols(t *testing.T) {
	assert.Len(t, Symbols, 8)
	assert.NotContains(t, Symbols, SymScratch)
}
