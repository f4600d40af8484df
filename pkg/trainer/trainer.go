// Package trainer implements TD(0) self-play training of an eval.Value over
// afterstates, per Szubert and Jaśkowski.
package trainer

import (
	"github.com/herohde/afterstate/pkg/board"
	"github.com/herohde/afterstate/pkg/eval"
	"github.com/herohde/afterstate/pkg/rng"
	"github.com/herohde/afterstate/pkg/search"
	"github.com/samber/lo"
)

// BenchmarkGames is the fixed size of the periodic evaluation run between
// training intervals.
const BenchmarkGames = 25

// BenchmarkDepth is the search depth used during the periodic evaluation
// run: deeper than the depth-1 training search, to measure the learned
// value function under closer-to-real play.
const BenchmarkDepth = 3

// TrainingProgress reports on one benchmark_interval slice of training.
type TrainingProgress struct {
	Game int
	// TrainingScore is the mean final score over the games played since the
	// previous report, or absent (nil) for the very first report.
	TrainingScore *float64
	// TestScore is the mean final score of the BenchmarkGames-game benchmark
	// run at BenchmarkDepth.
	TestScore float64
}

// ProgressFunc receives a TrainingProgress record every benchmarkInterval
// games.
type ProgressFunc func(TrainingProgress)

// Train runs numGames episodes of TD(0) self-play against v, using src for
// all randomness, reporting a TrainingProgress record every
// benchmarkInterval games via onProgress.
func Train(v eval.Value, src rng.Source, numGames int, alpha float64, benchmarkInterval int, onProgress ProgressFunc) {
	s := search.NewSearcher(v)

	var intervalScores []float64
	reportNum := 0

	for game := 0; game < numGames; game++ {
		intervalScores = append(intervalScores, runEpisode(s, v, src, alpha))
		s.Cache.Clear()

		if benchmarkInterval > 0 && (game+1)%benchmarkInterval == 0 {
			var trainingScore *float64
			if reportNum > 0 {
				mean := lo.Sum(intervalScores) / float64(len(intervalScores))
				trainingScore = &mean
			}

			onProgress(TrainingProgress{
				Game:          game + 1,
				TrainingScore: trainingScore,
				TestScore:     benchmark(s, src),
			})

			reportNum++
			intervalScores = nil
		}
	}
}

// runEpisode plays one self-play game to completion, applying TD(0) updates
// to v after every move, and returns the final board score.
func runEpisode(s *search.Searcher, v eval.Value, src rng.Source, alpha float64) float64 {
	state := board.NewRandom(src)

	for !state.IsDead() {
		action := s.Search(state, 1)
		afterstate := state.MoveCandidate(action)
		nextState := afterstate.SpawnRandomTile(src)

		ev := v.Eval(afterstate)

		if nextState.IsDead() {
			delta := eval.Score(alpha) * (0 - ev)
			v.Learn(afterstate, delta)
			state = nextState
			break
		}

		nextAction := s.Search(nextState, 1)
		nextAfterstate := nextState.MoveCandidate(nextAction)

		r := eval.Score(nextAfterstate.Score() - afterstate.Score())
		nextEval := v.Eval(nextAfterstate)

		delta := eval.Score(alpha) * (r + nextEval - ev)
		v.Learn(afterstate, delta)

		state = nextState
	}
	return state.Score()
}

// benchmark plays BenchmarkGames games at BenchmarkDepth and returns the
// mean final score, with the cache cleared between games.
func benchmark(s *search.Searcher, src rng.Source) float64 {
	scores := make([]float64, 0, BenchmarkGames)
	for i := 0; i < BenchmarkGames; i++ {
		state := board.NewRandom(src)
		for !state.IsDead() {
			action := s.Search(state, BenchmarkDepth)
			state = state.MakeMove(action, src)
		}
		scores = append(scores, state.Score())
		s.Cache.Clear()
	}
	return lo.Sum(scores) / float64(len(scores))
}
