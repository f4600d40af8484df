package engine_test

import (
	"context"
	"testing"

	"github.com/herohde/afterstate/pkg/engine"
	"github.com/herohde/afterstate/pkg/eval"
	"github.com/herohde/afterstate/pkg/rng"
	"github.com/herohde/afterstate/pkg/trainer"
	"github.com/stretchr/testify/assert"
)

func TestEngineLifecycle(t *testing.T) {
	e := engine.New(eval.NewLegacy(eval.OptimizedLegacyWeights()), engine.WithRandomSource(rng.NewMathRand(5)))

	assert.False(t, e.IsDead())
	assert.GreaterOrEqual(t, e.Score(), 0.0)

	d := e.Search(1)
	before := e.Board()
	e.MakeMove(d)
	assert.NotEqual(t, before, e.Board())

	e.Reset()
	assert.False(t, e.IsDead())
}

func TestEngineIntoWeights(t *testing.T) {
	e := engine.New(eval.NewNTupleSmall(eval.ZeroNTupleSmallWeights()))
	w, ok := e.IntoWeights().(eval.NTupleSmallWeights)
	assert.True(t, ok)
	assert.Equal(t, eval.NTupleSmallWeights{}, w)
}

func TestEngineTrain(t *testing.T) {
	e := engine.New(eval.NewLegacy(eval.ZeroLegacyWeights()), engine.WithRandomSource(rng.NewMathRand(9)))

	var reports []trainer.TrainingProgress
	e.Train(context.Background(), 2, 0.1, 1, func(p trainer.TrainingProgress) {
		reports = append(reports, p)
	})

	assert.Len(t, reports, 2)
}
