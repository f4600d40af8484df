// Package engine is the top-level façade: it owns a value function, a
// transposition cache and a randomness source, and exposes the operations a
// driver needs to play, benchmark or train a game.
package engine

import (
	"context"
	"fmt"

	"github.com/herohde/afterstate/pkg/board"
	"github.com/herohde/afterstate/pkg/eval"
	"github.com/herohde/afterstate/pkg/rng"
	"github.com/herohde/afterstate/pkg/search"
	"github.com/herohde/afterstate/pkg/trainer"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Engine encapsulates search, evaluation and the current game state. The
// core is single-threaded and synchronous: an Engine must not be shared
// across goroutines.
type Engine struct {
	v   eval.Value
	src rng.Source

	s *search.Searcher
	b board.Board
}

// Option is an engine creation option.
type Option func(*Engine)

// WithRandomSource configures the engine to draw randomness from src instead
// of the default rng.Frand source.
func WithRandomSource(src rng.Source) Option {
	return func(e *Engine) {
		e.src = src
	}
}

// New constructs an Engine over the given value function, with a fresh
// random starting board.
func New(v eval.Value, opts ...Option) *Engine {
	e := &Engine{
		v:   v,
		src: rng.NewFrand(),
	}
	for _, fn := range opts {
		fn(e)
	}
	e.s = search.NewSearcher(v)
	e.b = board.NewRandom(e.src)
	return e
}

// Name returns the engine name and version.
func Name() string {
	return fmt.Sprintf("afterstate %v", version)
}

// Board returns the current board.
func (e *Engine) Board() board.Board {
	return e.b
}

// Search returns the best direction for the current board at the given
// depth. Panics if the board is dead.
func (e *Engine) Search(depth int) board.Direction {
	return e.s.Search(e.b, depth)
}

// MakeMove slides in the given direction and spawns a random tile, updating
// and returning the new board.
func (e *Engine) MakeMove(d board.Direction) board.Board {
	e.b = e.b.MakeMove(d, e.src)
	return e.b
}

// IsDead reports whether the current board has no legal moves.
func (e *Engine) IsDead() bool {
	return e.b.IsDead()
}

// Score is the current board's score.
func (e *Engine) Score() float64 {
	return e.b.Score()
}

// Reset starts a fresh random game and clears the transposition cache. The
// value function's learned weights are untouched.
func (e *Engine) Reset() {
	e.b = board.NewRandom(e.src)
	e.s.Cache.Clear()
}

// IntoWeights relinquishes the engine's current weights for serialization.
// The concrete type depends on which eval.Value variant the engine was
// constructed with (e.g. eval.LegacyWeights).
func (e *Engine) IntoWeights() any {
	switch v := e.v.(type) {
	case *eval.Legacy:
		return v.IntoWeights()
	case *eval.NTupleSmall:
		return v.IntoWeights()
	case *eval.NTupleMedium:
		return v.IntoWeights()
	default:
		panic(fmt.Sprintf("engine: unrecognised value function %T", e.v))
	}
}

// Train runs numGames episodes of TD(0) self-play training against the
// engine's value function, reporting progress every benchmarkInterval
// games.
func (e *Engine) Train(ctx context.Context, numGames int, alpha float64, benchmarkInterval int, onProgress trainer.ProgressFunc) {
	logw.Infof(ctx, "Training %v for %v games, alpha=%v, benchmark every %v games", Name(), numGames, alpha, benchmarkInterval)
	trainer.Train(e.v, e.src, numGames, alpha, benchmarkInterval, onProgress)
}
