package eval

import "github.com/herohde/afterstate/pkg/board"

// NTupleSmallWeights holds per-tile-exponent bonuses partitioned by
// board-cell role: Corner for the two outer rows' end cells, Edge for their
// middle cells and the two inner rows' end cells, Center for the two inner
// rows' middle cells. Each is indexed by tile exponent (length 16).
type NTupleSmallWeights struct {
	Corner [16]float64
	Edge   [16]float64
	Center [16]float64
}

// OptimizedNTupleSmallWeights returns the canonical trained NTupleSmall
// weight set.
func OptimizedNTupleSmallWeights() NTupleSmallWeights {
	var w NTupleSmallWeights
	loadWeights(optimizedNTupleSmallJSON, &w)
	return w
}

// ZeroNTupleSmallWeights returns the all-zero NTupleSmall weight set.
func ZeroNTupleSmallWeights() NTupleSmallWeights {
	return NTupleSmallWeights{}
}

// NTupleSmall adds each row's own merge score to a per-role tile-exponent
// lookup: outer rows (0, 3) use corner/edge/edge/corner, inner rows (1, 2)
// use edge/center/center/edge.
type NTupleSmall struct {
	weights NTupleSmallWeights
}

// NewNTupleSmall constructs an NTupleSmall value function from the given weights.
func NewNTupleSmall(weights NTupleSmallWeights) *NTupleSmall {
	return &NTupleSmall{weights: weights}
}

func (v *NTupleSmall) Eval(b board.Board) Score {
	var eval float64
	for _, i := range [2]int{0, 3} {
		row := b.RowAt(i)
		eval += row.Score()
		eval += v.weights.Corner[row.TileAt(0)]
		eval += v.weights.Edge[row.TileAt(1)]
		eval += v.weights.Edge[row.TileAt(2)]
		eval += v.weights.Corner[row.TileAt(3)]
	}
	for _, i := range [2]int{1, 2} {
		row := b.RowAt(i)
		eval += row.Score()
		eval += v.weights.Edge[row.TileAt(0)]
		eval += v.weights.Center[row.TileAt(1)]
		eval += v.weights.Center[row.TileAt(2)]
		eval += v.weights.Edge[row.TileAt(3)]
	}
	return Score(eval)
}

// Learn distributes delta equally across the 16 feature slots touched by
// Eval's tile lookups (row scores are not learned features): 4 corner + 4
// edge references from the outer rows, 4 edge + 4 center from the inner
// rows.
func (v *NTupleSmall) Learn(b board.Board, delta Score) {
	adjusted := float64(delta) / 16

	for _, i := range [2]int{0, 3} {
		row := b.RowAt(i)
		v.weights.Corner[row.TileAt(0)] += adjusted
		v.weights.Edge[row.TileAt(1)] += adjusted
		v.weights.Edge[row.TileAt(2)] += adjusted
		v.weights.Corner[row.TileAt(3)] += adjusted
	}
	for _, i := range [2]int{1, 2} {
		row := b.RowAt(i)
		v.weights.Edge[row.TileAt(0)] += adjusted
		v.weights.Center[row.TileAt(1)] += adjusted
		v.weights.Center[row.TileAt(2)] += adjusted
		v.weights.Edge[row.TileAt(3)] += adjusted
	}
}

// IntoWeights relinquishes the current weights for serialization.
func (v *NTupleSmall) IntoWeights() NTupleSmallWeights {
	return v.weights
}
