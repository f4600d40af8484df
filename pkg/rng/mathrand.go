package rng

import "math/rand"

// MathRand is a seedable Source backed by the standard library's math/rand.
// Useful for reproducible tests and benchmarks; the driver controls the seed.
type MathRand struct {
	r *rand.Rand
}

// NewMathRand constructs a MathRand seeded with the given value.
func NewMathRand(seed int64) *MathRand {
	return &MathRand{r: rand.New(rand.NewSource(seed))}
}

func (m *MathRand) Uint32() uint32 {
	return m.r.Uint32()
}
