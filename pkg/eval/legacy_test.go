package eval_test

import (
	"testing"

	"github.com/herohde/afterstate/pkg/board"
	"github.com/herohde/afterstate/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestLegacyLearn(t *testing.T) {
	// Invariant 8: from zero weights, learn(b, 1.0) raises each touched slot
	// by its share of delta. A single tile at (0,0) touches Outer[1] twice
	// (once via row 0, once via column 0) and nothing else touches that
	// slot, so Outer[1] ends up at 2 * (1/32).
	v := eval.NewLegacy(eval.ZeroLegacyWeights())
	b := board.Board(0x0000_0000_0000_0001)

	v.Learn(b, 1.0)
	assert.InDelta(t, 2.0/32, v.IntoWeights().Outer[1], 1e-12)
}

func TestLegacyLearnUniform(t *testing.T) {
	// Invariant 8 (general form): learn distributes delta equally, so a
	// uniform board's every touched slot ends up with the same weight.
	v := eval.NewLegacy(eval.ZeroLegacyWeights())
	b := board.Board(0x1111_1111_1111_1111)

	v.Learn(b, 1.0)
	w := v.IntoWeights()
	assert.Equal(t, w.Outer[1], w.Inner[1])
	assert.Equal(t, eval.Score(0), v.Eval(board.Empty))
}

func TestOptimizedLegacyWeightsLoads(t *testing.T) {
	w := eval.OptimizedLegacyWeights()
	assert.NotEqual(t, eval.LegacyWeights{}, w)
}
