package eval

import "github.com/herohde/afterstate/pkg/board"

// NTupleMediumWeights holds per-16-bit-tuple bonuses, indexed directly by a
// row or column's raw bit pattern (board.NumRows entries each), for the
// outer rows/columns (0, 3) and inner rows/columns (1, 2) respectively.
type NTupleMediumWeights struct {
	Outer []float64
	Inner []float64
}

// OptimizedNTupleMediumWeights returns the canonical trained NTupleMedium
// weight set.
func OptimizedNTupleMediumWeights() NTupleMediumWeights {
	var w NTupleMediumWeights
	loadWeights(optimizedNTupleMediumJSON, &w)
	return w
}

// ZeroNTupleMediumWeights returns an NTupleMedium weight set with every
// tuple weight initialised to zero.
func ZeroNTupleMediumWeights() NTupleMediumWeights {
	return NTupleMediumWeights{
		Outer: make([]float64, board.NumRows),
		Inner: make([]float64, board.NumRows),
	}
}

// NTupleMedium looks up each row and column, and its horizontal mirror, by
// its full 16-bit tuple value rather than per-tile, giving it far more
// capacity than NTupleSmall's per-exponent tables at the cost of a much
// larger weight tensor.
type NTupleMedium struct {
	weights NTupleMediumWeights
}

// NewNTupleMedium constructs an NTupleMedium value function from the given weights.
func NewNTupleMedium(weights NTupleMediumWeights) *NTupleMedium {
	return &NTupleMedium{weights: weights}
}

func (v *NTupleMedium) Eval(b board.Board) Score {
	var eval float64
	for _, i := range [2]int{0, 3} {
		for _, tuple := range [2]board.Row{b.RowAt(i), b.ColumnAt(i)} {
			eval += v.weights.Outer[tuple]
			eval += v.weights.Outer[tuple.Reversed()]
		}
	}
	for _, i := range [2]int{1, 2} {
		for _, tuple := range [2]board.Row{b.RowAt(i), b.ColumnAt(i)} {
			eval += v.weights.Inner[tuple]
			eval += v.weights.Inner[tuple.Reversed()]
		}
	}
	return Score(eval)
}

// Learn distributes delta equally across the 16 feature slots touched by
// Eval: 2 outer rows + 2 outer columns, each contributing its tuple and its
// reversal, plus the same for the 2 inner rows/columns.
func (v *NTupleMedium) Learn(b board.Board, delta Score) {
	adjusted := float64(delta) / 16

	for _, i := range [2]int{0, 3} {
		for _, tuple := range [2]board.Row{b.RowAt(i), b.ColumnAt(i)} {
			v.weights.Outer[tuple] += adjusted
			v.weights.Outer[tuple.Reversed()] += adjusted
		}
	}
	for _, i := range [2]int{1, 2} {
		for _, tuple := range [2]board.Row{b.RowAt(i), b.ColumnAt(i)} {
			v.weights.Inner[tuple] += adjusted
			v.weights.Inner[tuple.Reversed()] += adjusted
		}
	}
}

// IntoWeights relinquishes the current weights for serialization.
func (v *NTupleMedium) IntoWeights() NTupleMediumWeights {
	return v.weights
}
