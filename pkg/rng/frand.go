package rng

import "lukechampine.com/frand"

// Frand is the default, non-seedable Source for production self-play: a fast
// userspace CSPRNG (lukechampine.com/frand) rather than the slower,
// lock-contended global math/rand source. Reproducibility is not required of
// the core (SPEC_FULL.md §6), so Frand has no seed knob; use MathRand where
// determinism matters.
type Frand struct{}

// NewFrand constructs the default production Source.
func NewFrand() Frand {
	return Frand{}
}

func (Frand) Uint32() uint32 {
	return uint32(frand.Uint64n(1 << 32))
}
