// afterstate is a 2048 engine driven by expectimax search over a trainable
// linear value function.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/herohde/afterstate/pkg/bench"
	"github.com/herohde/afterstate/pkg/engine"
	"github.com/herohde/afterstate/pkg/eval"
	"github.com/herohde/afterstate/pkg/rng"
	"github.com/herohde/afterstate/pkg/trainer"
	"github.com/seekerror/logw"
)

const (
	defaultDepth             = 3
	defaultLearningRate      = 0.0005
	defaultBenchmarkInterval = 5000
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: afterstate <play|bench|train> [options]

afterstate plays, benchmarks or trains a 2048 expectimax engine.

Commands:
  play   plays one game, logging the board to the command line
  bench  plays N games to evaluate the strength of the current weights
  train  continuously self-plays to optimize the value function

`)
		flag.PrintDefaults()
	}
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		flag.Usage()
		logw.Exitf(ctx, "missing command")
	}

	switch os.Args[1] {
	case "play":
		runPlay(ctx, os.Args[2:])
	case "bench":
		runBench(ctx, os.Args[2:])
	case "train":
		runTrain(ctx, os.Args[2:])
	default:
		flag.Usage()
		logw.Exitf(ctx, "unknown command: %v", os.Args[1])
	}
}

func runPlay(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	depth := fs.Int("depth", defaultDepth, "Expectimax search depth")
	vfn := fs.String("v_function", "legacy", "Value function: legacy, ntuple_small, ntuple_medium")
	_ = fs.Parse(args)

	logw.Infof(ctx, "Playing one game at depth %v with %v weights", *depth, *vfn)

	e := engine.New(newValue(*vfn, false))

	fmt.Println(e.Board())
	for !e.IsDead() {
		d := e.Search(*depth)
		e.MakeMove(d)
		fmt.Println(e.Board())
	}
	fmt.Printf("Final Score: %v\n", e.Score())
}

func runBench(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	depth := fs.Int("depth", defaultDepth, "Expectimax search depth")
	vfn := fs.String("v_function", "legacy", "Value function: legacy, ntuple_small, ntuple_medium")
	_ = fs.Parse(args)
	if fs.NArg() < 1 {
		logw.Exitf(ctx, "bench requires N (number of games)")
	}
	numGames := parseIntArg(ctx, fs.Arg(0))

	src := rng.NewFrand()
	result := bench.Run(newValue(*vfn, false), src, numGames, *depth, func(game int) {
		logw.Infof(ctx, "Played %v/%v games", game+1, numGames)
	})

	fmt.Printf("%v games played.\n", result.NumGames)
	fmt.Printf("Average score: %.0f ± %.0f\n", result.Mean, result.StdError)
	fmt.Printf("Standard deviation: %.0f\n", result.StdDev)
	fmt.Printf("Confidence interval (95%%): [%.0f, %.0f]\n", result.LowerBound, result.UpperBound)
	fmt.Println()
	for n := 8; n < 13; n++ {
		fmt.Printf("%v: %.1f%%\n", uint64(1)<<uint(n), result.TilesReached[n]*100)
	}
}

func runTrain(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	zero := fs.Bool("zero", false, "Start training from zero weights instead of the optimized default")
	alpha := fs.Float64("alpha", defaultLearningRate, "Learning rate")
	vfn := fs.String("v_function", "legacy", "Value function: legacy, ntuple_small, ntuple_medium")
	format := fs.String("format", "human", "Output format: human, json")
	benchmarkInterval := fs.Int("benchmark-interval", defaultBenchmarkInterval, "Games between benchmark evaluations")
	_ = fs.Parse(args)
	if fs.NArg() < 1 {
		logw.Exitf(ctx, "train requires N (number of games)")
	}
	numGames := parseIntArg(ctx, fs.Arg(0))

	v := newValue(*vfn, *zero)
	e := engine.New(v)

	e.Train(ctx, numGames, *alpha, *benchmarkInterval, func(p trainer.TrainingProgress) {
		reportProgress(*format, p)
	})

	reportWeights(*format, e.IntoWeights())
}

func reportProgress(format string, p trainer.TrainingProgress) {
	switch format {
	case "json":
		b, _ := json.Marshal(p)
		fmt.Println(string(b))
	default:
		fmt.Printf("Game %v, Test Score: %v\n", p.Game, p.TestScore)
	}
}

func reportWeights(format string, weights any) {
	switch format {
	case "json":
		b, _ := json.Marshal(weights)
		fmt.Println(string(b))
	default:
		fmt.Printf("%+v\n", weights)
	}
}

func newValue(name string, zero bool) eval.Value {
	switch name {
	case "legacy":
		if zero {
			return eval.NewLegacy(eval.ZeroLegacyWeights())
		}
		return eval.NewLegacy(eval.OptimizedLegacyWeights())
	case "ntuple_small":
		if zero {
			return eval.NewNTupleSmall(eval.ZeroNTupleSmallWeights())
		}
		return eval.NewNTupleSmall(eval.OptimizedNTupleSmallWeights())
	case "ntuple_medium":
		if zero {
			return eval.NewNTupleMedium(eval.ZeroNTupleMediumWeights())
		}
		return eval.NewNTupleMedium(eval.OptimizedNTupleMediumWeights())
	default:
		panic(fmt.Sprintf("unknown v_function: %v", name))
	}
}

func parseIntArg(ctx context.Context, s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		logw.Exitf(ctx, "invalid integer argument %q: %v", s, err)
	}
	return n
}
