package board_test

import (
	"testing"

	"github.com/herohde/afterstate/pkg/board"
	"github.com/herohde/afterstate/pkg/rng"
	"github.com/stretchr/testify/assert"
)

func TestBoardGenMoves(t *testing.T) {
	t.Run("bottom-left corner pair", func(t *testing.T) {
		// S5: two 2-tiles in the top-left corner (row 0, which Up slides
		// towards).
		b := board.Board(0x0000_0000_0000_0011)

		moves := b.GenMoves()
		dirs := make(map[board.Direction]bool)
		for _, m := range moves {
			dirs[m.Direction] = true
		}

		assert.True(t, dirs[board.Left])
		assert.True(t, dirs[board.Right])
		assert.False(t, dirs[board.Up])
		assert.True(t, dirs[board.Down])

		for _, m := range moves {
			if m.Direction == board.Left {
				assert.Equal(t, board.Board(0x0000_0000_0000_0002), m.Afterstate)
			}
		}
	})

	t.Run("non-terminal position", func(t *testing.T) {
		// S6.
		b := board.Board(0xBA92_7621_0221_1001)
		assert.NotEmpty(t, b.GenMoves())
		assert.False(t, b.IsDead())
	})
}

func TestTileSpawns(t *testing.T) {
	// S7: empty board with one 2-tile in the centre.
	b := board.Board(0x0000_0100_0000_0000)

	events := b.GenTileSpawns()
	assert.Len(t, events, 30)

	var total float64
	twos, fours := 0, 0
	for _, e := range events {
		total += e.Probability
		switch e.Tile {
		case board.Two:
			twos++
			assert.InDelta(t, 0.06, e.Probability, 1e-9)
		case board.Four:
			fours++
			assert.InDelta(t, 0.1/15, e.Probability, 1e-9)
		}
	}
	assert.Equal(t, 15, twos)
	assert.Equal(t, 15, fours)
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestBoardInvariants(t *testing.T) {
	src := rng.NewMathRand(1)

	boards := []board.Board{
		0x0000_0000_0000_0011,
		0xBA92_7621_0221_1001,
		0x0000_0100_0000_0000,
		board.NewRandom(src),
		board.NewRandom(src),
	}

	for _, b := range boards {
		for _, d := range board.Directions {
			candidate := b.MoveCandidate(d)

			// Invariant 1: merges are non-negative reward.
			assert.GreaterOrEqual(t, candidate.Score(), b.Score())

			// Invariant 3: move_candidate == b iff d not in gen_moves(b).
			inGenMoves := false
			for _, m := range b.GenMoves() {
				if m.Direction == d {
					inGenMoves = true
				}
			}
			assert.Equal(t, candidate == b, !inGenMoves)

			if candidate.CountEmpties() > 0 {
				made := candidate.SpawnRandomTile(src)
				// Invariant 2: spawn fills exactly one empty cell.
				assert.GreaterOrEqual(t, made.CountEmpties(), candidate.CountEmpties()-1)
			}
		}

		// Invariant 5: transpose is an involution.
		assert.Equal(t, b, b.Transpose().Transpose())
	}
}

func TestColumnAt(t *testing.T) {
	b := board.NewRandom(rng.NewMathRand(42))
	for i := 0; i < 4; i++ {
		col := b.ColumnAt(i)
		for y := 0; y < 4; y++ {
			assert.Equal(t, b.At(i, y), col.TileAt(y))
		}
	}
}

func TestHighestTile(t *testing.T) {
	b := board.Board(0xBA92_7621_0221_1001)
	assert.Equal(t, uint8(0xB), b.HighestTile())
}
