// Package search implements expectimax move selection over fractional depth,
// charged against tile-spawn rarity, backed by a fixed-size transposition
// cache.
package search

import (
	"fmt"

	"github.com/herohde/afterstate/pkg/board"
	"github.com/herohde/afterstate/pkg/eval"
)

// DepthPenalty4 is the effective-depth cost charged to a Four tile spawn
// (~9x rarer than Two, so its branch is cut ln(0.1)/ln(0.9) ≈ 21.85 "ply"
// earlier than a Two branch would be).
const DepthPenalty4 = 22

// Searcher evaluates positions with an expectimax search over the afterstate
// value function V, caching intermediate results in cache.
type Searcher struct {
	V     eval.Value
	Cache *Cache
}

// NewSearcher returns a Searcher over v, with a fresh transposition cache.
func NewSearcher(v eval.Value) *Searcher {
	return &Searcher{V: v, Cache: NewCache()}
}

// Search returns the legal direction whose resulting afterstate maximises
// expected value at the given depth. Panics if b is dead (caller must check
// board.Board.IsDead first) or if a NaN is encountered comparing candidate
// scores (indicates corrupted weights or eval function).
func (s *Searcher) Search(b board.Board, depth int) board.Direction {
	moves := b.GenMoves()
	if len(moves) == 0 {
		panic("search: called on a dead board")
	}

	best := moves[0].Direction
	bestScore := eval.Score(negInf)
	for _, m := range moves {
		reward := eval.Score(m.Afterstate.Score() - b.Score())
		score := reward + s.expectimaxSpawn(m.Afterstate, depth-1)
		if score != score || bestScore != bestScore {
			panic("search: NaN encountered comparing candidate scores")
		}
		if score > bestScore {
			bestScore = score
			best = m.Direction
		}
	}
	return best
}

const negInf = -1e308

// expectimaxMove is the MAX level: it picks the best direction from state
// and returns the accumulated reward plus recursive value, or 0 if state is
// terminal (the caller already accounted for the reward leading to state).
func (s *Searcher) expectimaxMove(state board.Board, depth int) eval.Score {
	moves := state.GenMoves()
	if len(moves) == 0 {
		return 0
	}

	best := eval.Score(negInf)
	for _, m := range moves {
		reward := eval.Score(m.Afterstate.Score() - state.Score())
		score := reward + s.expectimaxSpawn(m.Afterstate, depth)
		if score > best {
			best = score
		}
	}
	return best
}

// expectimaxSpawn is the EXPECTATION level: the probability-weighted sum,
// over every tile-spawn outcome of afterstate, of expectimaxMove on the
// resulting state. Consults and populates the transposition cache at depth
// >= minCacheDepth.
func (s *Searcher) expectimaxSpawn(afterstate board.Board, depth int) eval.Score {
	if depth >= minCacheDepth {
		if e, ok := s.Cache.Get(afterstate); ok && e.Depth >= depth {
			return e.Score
		}
	}

	if depth <= 0 {
		return s.V.Eval(afterstate)
	}

	var total eval.Score
	for _, ev := range afterstate.GenTileSpawns() {
		newDepth := depth - 1
		if ev.Tile == board.Four {
			newDepth = saturatingSub(depth, DepthPenalty4)
		}
		total += eval.Score(ev.Probability) * s.expectimaxMove(ev.Board, newDepth)
	}

	if depth >= minCacheDepth {
		s.Cache.Set(afterstate, PositionEval{Depth: depth, Score: total})
	}
	return total
}

func saturatingSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

func (s *Searcher) String() string {
	return fmt.Sprintf("Searcher[%T]", s.V)
}
