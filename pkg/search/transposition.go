package search

import (
	"github.com/herohde/afterstate/pkg/board"
	"github.com/herohde/afterstate/pkg/eval"
)

// cacheSize is the fixed slot count of the transposition cache. Direct-mapped:
// every board hashes to exactly one slot, with no chaining.
const cacheSize = 4096

// minCacheDepth is the minimum search depth at which the cache is consulted
// or written; shallow evaluations are cheaper than a cache probe.
const minCacheDepth = 2

// PositionEval is a cached expectimax_spawn result: the effective depth it
// was computed at, and the resulting score.
type PositionEval struct {
	Depth int
	Score eval.Score
}

type slot struct {
	board    board.Board
	occupied bool
	eval     PositionEval
}

// Cache is a fixed-size direct-mapped transposition cache keyed by
// board.Hash() mod its slot count. Owned exclusively by one Searcher; not safe
// for concurrent use (the core is single-threaded, see the engine package).
type Cache struct {
	slots [cacheSize]slot
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{}
}

// Get returns the stored PositionEval for b, iff the slot is occupied by b
// itself.
func (c *Cache) Get(b board.Board) (PositionEval, bool) {
	s := &c.slots[b.Hash()%cacheSize]
	if s.occupied && s.board == b {
		return s.eval, true
	}
	return PositionEval{}, false
}

// Set installs e for b: an empty slot is always filled; a slot already
// holding b is overwritten only if e is at least as deep as the stored
// evaluation; a slot holding a different board is always overwritten
// (direct-mapped replacement, no chaining).
func (c *Cache) Set(b board.Board, e PositionEval) {
	s := &c.slots[b.Hash()%cacheSize]
	if s.occupied && s.board == b && e.Depth < s.eval.Depth {
		return
	}
	s.board = b
	s.occupied = true
	s.eval = e
}

// Clear empties every slot.
func (c *Cache) Clear() {
	for i := range c.slots {
		c.slots[i] = slot{}
	}
}
