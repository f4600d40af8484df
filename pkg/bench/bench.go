// Package bench runs out-of-core statistical evaluation of a trained value
// function: N complete games at a fixed search depth, summarised into a
// score distribution and a highest-tile-reached histogram.
package bench

import (
	"github.com/herohde/afterstate/pkg/board"
	"github.com/herohde/afterstate/pkg/eval"
	"github.com/herohde/afterstate/pkg/rng"
	"github.com/herohde/afterstate/pkg/search"
	"gonum.org/v1/gonum/stat"
)

// Result summarises a benchmark run of NumGames games.
type Result struct {
	NumGames int
	Depth    int

	Mean       float64
	StdDev     float64
	StdError   float64
	LowerBound float64 // 95% CI lower bound
	UpperBound float64 // 95% CI upper bound

	// TilesReached[e] is the fraction of games that reached tile exponent e
	// at some point (the board's maximum tile was >= e).
	TilesReached [16]float64
}

// ProgressFunc is called after every completed game with its 0-based index.
type ProgressFunc func(game int)

// Run plays numGames independent games to completion, each starting from a
// fresh random board and searching at the given depth, using src for all
// randomness. The transposition cache is cleared between games.
func Run(v eval.Value, src rng.Source, numGames, depth int, onProgress ProgressFunc) Result {
	s := search.NewSearcher(v)

	scores := make([]float64, 0, numGames)
	var tilesReachedCount [16]int

	for i := 0; i < numGames; i++ {
		b := playGame(s, src, depth)
		scores = append(scores, b.Score())

		for e := 0; e <= int(b.HighestTile()) && e < 16; e++ {
			tilesReachedCount[e]++
		}

		if onProgress != nil {
			onProgress(i)
		}
		s.Cache.Clear()
	}

	mean, stddev := stat.MeanStdDev(scores, nil)
	stderr := stat.StdErr(stddev, float64(len(scores)))

	var tilesReached [16]float64
	for e := range tilesReachedCount {
		tilesReached[e] = float64(tilesReachedCount[e]) / float64(numGames)
	}

	return Result{
		NumGames:     numGames,
		Depth:        depth,
		Mean:         mean,
		StdDev:       stddev,
		StdError:     stderr,
		LowerBound:   mean - 1.96*stderr,
		UpperBound:   mean + 1.96*stderr,
		TilesReached: tilesReached,
	}
}

func playGame(s *search.Searcher, src rng.Source, depth int) board.Board {
	b := board.NewRandom(src)
	for !b.IsDead() {
		d := s.Search(b, depth)
		b = b.MakeMove(d, src)
	}
	return b
}
