package eval

import "github.com/herohde/afterstate/pkg/board"

// LegacyWeights holds the per-tile-exponent bonuses for the Legacy value
// function. Outer applies to the first and last cell of a row or column,
// Inner to the two middle cells. Both are indexed by tile exponent, so they
// must have length 16 -- the maximum representable exponent plus one.
type LegacyWeights struct {
	Outer [16]float64
	Inner [16]float64
}

// OptimizedLegacyWeights returns the canonical trained Legacy weight set.
func OptimizedLegacyWeights() LegacyWeights {
	var w LegacyWeights
	loadWeights(optimizedLegacyJSON, &w)
	return w
}

// ZeroLegacyWeights returns the all-zero Legacy weight set.
func ZeroLegacyWeights() LegacyWeights {
	return LegacyWeights{}
}

// Legacy sums, over each of the four rows and four columns, outer[tile 0] +
// inner[tile 1] + inner[tile 2] + outer[tile 3].
type Legacy struct {
	weights LegacyWeights
}

// NewLegacy constructs a Legacy value function from the given weights.
func NewLegacy(weights LegacyWeights) *Legacy {
	return &Legacy{weights: weights}
}

func (v *Legacy) Eval(b board.Board) Score {
	var eval float64
	for i := 0; i < 4; i++ {
		row := b.RowAt(i)
		column := b.ColumnAt(i)

		eval += v.weights.Outer[row.TileAt(0)]
		eval += v.weights.Inner[row.TileAt(1)]
		eval += v.weights.Inner[row.TileAt(2)]
		eval += v.weights.Outer[row.TileAt(3)]

		eval += v.weights.Outer[column.TileAt(0)]
		eval += v.weights.Inner[column.TileAt(1)]
		eval += v.weights.Inner[column.TileAt(2)]
		eval += v.weights.Outer[column.TileAt(3)]
	}
	return Score(eval)
}

// Learn distributes delta equally across the 32 feature slots touched by
// Eval (4 rows + 4 columns, 4 outer and 4 inner references each).
func (v *Legacy) Learn(b board.Board, delta Score) {
	adjusted := float64(delta) / 32

	for i := 0; i < 4; i++ {
		row := b.RowAt(i)
		column := b.ColumnAt(i)

		v.weights.Outer[row.TileAt(0)] += adjusted
		v.weights.Inner[row.TileAt(1)] += adjusted
		v.weights.Inner[row.TileAt(2)] += adjusted
		v.weights.Outer[row.TileAt(3)] += adjusted

		v.weights.Outer[column.TileAt(0)] += adjusted
		v.weights.Inner[column.TileAt(1)] += adjusted
		v.weights.Inner[column.TileAt(2)] += adjusted
		v.weights.Outer[column.TileAt(3)] += adjusted
	}
}

// IntoWeights relinquishes the current weights for serialization.
func (v *Legacy) IntoWeights() LegacyWeights {
	return v.weights
}
