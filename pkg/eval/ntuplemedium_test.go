package eval_test

import (
	"testing"

	"github.com/herohde/afterstate/pkg/board"
	"github.com/herohde/afterstate/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestNTupleMediumLearnInner(t *testing.T) {
	// A single tile at (1,1) makes row 1 and column 1 both equal the tuple
	// 0x0010, which is neither a palindrome nor equal to the all-zero tuple
	// touched everywhere else. Inner[0x0010] is therefore touched exactly
	// twice (row 1's tuple and column 1's tuple), isolated from every other
	// slot.
	v := eval.NewNTupleMedium(eval.ZeroNTupleMediumWeights())
	b := board.Board(0x0000_0000_0010_0000)

	v.Learn(b, 1.0)
	assert.InDelta(t, 2.0/16, v.IntoWeights().Inner[0x0010], 1e-12)
}

func TestNTupleMediumZeroWeightsSized(t *testing.T) {
	w := eval.ZeroNTupleMediumWeights()
	assert.Len(t, w.Outer, board.NumRows)
	assert.Len(t, w.Inner, board.NumRows)
}

func TestOptimizedNTupleMediumWeightsLoads(t *testing.T) {
	w := eval.OptimizedNTupleMediumWeights()
	assert.Len(t, w.Outer, board.NumRows)
	assert.Len(t, w.Inner, board.NumRows)
}
