// Package rng provides the randomness source the core consumes for tile spawns
// and self-play. Seeding policy is left to the driver: the core only requires a
// uniform Source.
package rng

// Source is a uniform PRNG source. Implementations need not be safe for
// concurrent use; the core is single-threaded (see SPEC_FULL.md §5).
type Source interface {
	// Uint32 returns a uniformly distributed pseudo-random uint32.
	Uint32() uint32
}

// WeightedIndex samples an index into weights with probability proportional
// to its weight. Panics if weights is empty or all-zero.
func WeightedIndex(src Source, weights []uint32) int {
	var total uint64
	for _, w := range weights {
		total += uint64(w)
	}
	if total == 0 {
		panic("rng: all weights are zero")
	}

	// Map a uniform uint32 onto [0, total) via 64-bit multiplication, avoiding
	// the modulo bias of a plain mod.
	target := (uint64(src.Uint32()) * total) >> 32

	var cum uint64
	for i, w := range weights {
		cum += uint64(w)
		if target < cum {
			return i
		}
	}
	return len(weights) - 1 // unreachable given the total check above
}
