package utils

import (
	"math/rand"
	"time"
)

// Rand is the subset of *rand.Rand used by game logic.
// Tests substitute scripted implementations to make draws deterministic.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded source. A zero seed uses the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(rng Rand, min, max int) int {
	if min >= max {
		return min
	}
	return rng.Intn(max-min+1) + min
}

// RandomFloatUpTo returns a random float64 in the half-open interval (0, max]
func RandomFloatUpTo(rng Rand, max float64) float64 {
	return max * (1 - rng.Float64())
}

// Clamp restricts value to the closed range [lo, hi]
func Clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
