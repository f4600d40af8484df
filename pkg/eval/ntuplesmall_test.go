package eval_test

import (
	"testing"

	"github.com/herohde/afterstate/pkg/board"
	"github.com/herohde/afterstate/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestNTupleSmallLearnCorner(t *testing.T) {
	// S8: under NTupleSmall with zero weights, learn(b, 1.0) applied to a
	// board whose rows all have tile 0 at corner positions raises corner[0]
	// by 1/16*4 = 0.25.
	v := eval.NewNTupleSmall(eval.ZeroNTupleSmallWeights())
	b := board.Board(0x0AB0_0CD0_0EF0_0120) // corners (x=0,3) all tile 0 on every row

	v.Learn(b, 1.0)
	assert.InDelta(t, 0.25, v.IntoWeights().Corner[0], 1e-12)
}

func TestNTupleSmallLearnCenter(t *testing.T) {
	// A single tile at (1,1), the sole inner-row cell set, touches Center[1]
	// exactly once (NTupleSmall only scans rows, so no column pass touches
	// it again), isolated from every other slot which stays at exponent 0.
	v := eval.NewNTupleSmall(eval.ZeroNTupleSmallWeights())
	b := board.Board(0x0000_0000_0010_0000)

	v.Learn(b, 1.0)
	assert.InDelta(t, 1.0/16, v.IntoWeights().Center[1], 1e-12)
}

func TestOptimizedNTupleSmallWeightsLoads(t *testing.T) {
	w := eval.OptimizedNTupleSmallWeights()
	assert.NotEqual(t, eval.NTupleSmallWeights{}, w)
}
