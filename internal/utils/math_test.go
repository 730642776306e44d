package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

func (r fixedRand) Float64() float64 { return r.f }

func TestRandomInt_Bounds(t *testing.T) {
	rng := NewRand(42)
	for i := 0; i < 1000; i++ {
		v := RandomInt(rng, 2, 5)
		assert.GreaterOrEqual(t, v, 2)
		assert.LessOrEqual(t, v, 5)
	}
}

func TestRandomInt_Offsets(t *testing.T) {
	tests := []struct {
		name     string
		rng      Rand
		min, max int
		expected int
	}{
		{"lowest draw maps to min", fixedRand{n: 0}, 3, 6, 3},
		{"highest draw maps to max", fixedRand{n: 3}, 3, 6, 6},
		{"min equals max", fixedRand{n: 9}, 4, 4, 4},
		{"inverted range returns min", fixedRand{n: 9}, 7, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RandomInt(tt.rng, tt.min, tt.max))
		})
	}
}

func TestRandomFloatUpTo_NeverZero(t *testing.T) {
	// Float64 is in [0,1), so a zero draw must map to the upper bound
	assert.Equal(t, 25.0, RandomFloatUpTo(fixedRand{f: 0}, 25))
	assert.InDelta(t, 0.0025, RandomFloatUpTo(fixedRand{f: 0.9999}, 25), 1e-9)

	rng := NewRand(7)
	for i := 0; i < 1000; i++ {
		v := RandomFloatUpTo(rng, 25)
		assert.Greater(t, v, 0.0)
		assert.LessOrEqual(t, v, 25.0)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 0, 100))
	assert.Equal(t, 100, Clamp(130, 0, 100))
	assert.Equal(t, 42, Clamp(42, 0, 100))
}

func TestNewRand_SeedIsDeterministic(t *testing.T) {
	a := NewRand(99)
	b := NewRand(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
}
