package search

import (
	"testing"

	"github.com/herohde/afterstate/pkg/board"
	"github.com/herohde/afterstate/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestCacheGetSet(t *testing.T) {
	c := NewCache()
	b := board.Board(0xBA92_7621_0221_1001)

	_, ok := c.Get(b)
	assert.False(t, ok)

	c.Set(b, PositionEval{Depth: 3, Score: 10})
	got, ok := c.Get(b)
	assert.True(t, ok)
	assert.Equal(t, PositionEval{Depth: 3, Score: 10}, got)
}

func TestCacheShallowerWriteIgnored(t *testing.T) {
	// Invariant 7: after set(b, e), get(b) returns e or an e' with
	// e'.depth >= e.depth.
	c := NewCache()
	b := board.Board(0xBA92_7621_0221_1001)

	c.Set(b, PositionEval{Depth: 5, Score: 10})
	c.Set(b, PositionEval{Depth: 2, Score: 999})

	got, ok := c.Get(b)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, got.Depth, 5)
}

func TestCacheClear(t *testing.T) {
	c := NewCache()
	b := board.Board(0xBA92_7621_0221_1001)
	c.Set(b, PositionEval{Depth: 3, Score: 10})

	c.Clear()
	_, ok := c.Get(b)
	assert.False(t, ok)
}

func TestCacheDifferentBoardOverwrites(t *testing.T) {
	c := NewCache()
	// Two distinct boards that collide in the same slot: direct-mapped
	// replacement always installs the newcomer.
	var a board.Board
	var b board.Board = 1
	for a.Hash()%cacheSize != b.Hash()%cacheSize {
		b++
	}

	c.Set(a, PositionEval{Depth: 10, Score: 1})
	c.Set(b, PositionEval{Depth: 1, Score: 2})

	got, ok := c.Get(b)
	assert.True(t, ok)
	assert.Equal(t, eval.Score(2), got.Score)

	_, ok = c.Get(a)
	assert.False(t, ok)
}
