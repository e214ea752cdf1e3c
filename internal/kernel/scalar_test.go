package kernel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// randVec returns a vector with components in [-100, 100).
func randVec(r *rand.Rand) Vec3 {
	return Vec3{r.Float64()*200 - 100, r.Float64()*200 - 100, r.Float64()*200 - 100}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"integers", 2, 3, 5},
		{"negative", -1.5, 0.5, -1},
		{"zero", 7.25, 0, 7.25},
		{"infinity", math.Inf(1), 1, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Add(tt.a, tt.b))
		})
	}

	assert.True(t, math.IsNaN(Add(math.NaN(), 1)))
}

func TestAdd_Properties(t *testing.T) {
	r := newRand()
	for i := 0; i < 100; i++ {
		a, b := r.NormFloat64()*1e6, r.NormFloat64()*1e6
		assert.Equal(t, Add(b, a), Add(a, b), "commutativity")
		assert.Equal(t, a, Add(a, 0), "additive identity")
	}
}

func TestDot3(t *testing.T) {
	assert.Equal(t, 32.0, Dot3(1, 2, 3, 4, 5, 6))
	assert.Equal(t, 0.0, Dot3(1, 0, 0, 0, 1, 0))

	r := newRand()
	for i := 0; i < 100; i++ {
		u, v := randVec(r), randVec(r)
		assert.Equal(t, u.Dot(v), v.Dot(u), "symmetry")
	}
}

func TestLength3(t *testing.T) {
	assert.Equal(t, 0.0, Length3(0, 0, 0))
	assert.Equal(t, 5.0, Length3(3, 4, 0))
	assert.Equal(t, 13.0, Length3(-3, -4, -12))
	assert.True(t, math.IsInf(Length3(1e200, 1e200, 0), 1), "overflow is not guarded")

	r := newRand()
	for i := 0; i < 100; i++ {
		v := randVec(r)
		n := v.Scale(-1)
		assert.Equal(t, v.Length(), n.Length(), "sign invariance")
		assert.GreaterOrEqual(t, v.Length(), 0.0)
	}
}

func TestCheckLen_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "cross: buffer too small: need 3, got 2", func() {
		Cross(1, 0, 0, 0, 1, 0, make([]float64, 2))
	})
	assert.PanicsWithValue(t, "mat4Multiply: buffer too small: need 16, got 15", func() {
		Mat4Multiply(make([]float64, 16), make([]float64, 16), make([]float64, 15))
	})
}
