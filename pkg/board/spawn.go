package board

import "github.com/herohde/afterstate/pkg/rng"

// TileSpawn is a kind of tile that can appear on an empty cell.
type TileSpawn uint8

const (
	// Two spawns with probability 0.9 and has exponent 1 (face value 2).
	Two TileSpawn = iota
	// Four spawns with probability 0.1 and has exponent 2 (face value 4).
	Four
)

// Exponent is the tile exponent this spawn places.
func (t TileSpawn) Exponent() uint8 {
	if t == Two {
		return 1
	}
	return 2
}

// Probability is the unconditional probability of this spawn kind, independent
// of which empty cell it lands on.
func (t TileSpawn) Probability() float64 {
	if t == Two {
		return 0.9
	}
	return 0.1
}

// TileSpawnEvent is one possible outcome of spawning a tile on an afterstate:
// a per-event probability, the kind of tile spawned, and the resulting board.
type TileSpawnEvent struct {
	Probability float64
	Tile        TileSpawn
	Board       Board
}

// GenTileSpawns enumerates every empty cell of b twice, once for a Two and
// once for a Four. Per-event probabilities sum to 1 whenever b has at least
// one empty cell.
func (b Board) GenTileSpawns() []TileSpawnEvent {
	empties := b.CountEmpties()
	if empties == 0 {
		return nil
	}

	events := make([]TileSpawnEvent, 0, 2*empties)
	for i := 0; i < 16; i++ {
		shift := uint(4 * i)
		if (uint64(b)>>shift)&tileMask != 0 {
			continue
		}

		events = append(events,
			TileSpawnEvent{
				Probability: Two.Probability() / float64(empties),
				Tile:        Two,
				Board:       Board(uint64(b) | uint64(Two.Exponent())<<shift),
			},
			TileSpawnEvent{
				Probability: Four.Probability() / float64(empties),
				Tile:        Four,
				Board:       Board(uint64(b) | uint64(Four.Exponent())<<shift),
			},
		)
	}
	return events
}

// SpawnRandomTile samples one tile-spawn event with weights proportional to
// 9 for Two and 1 for Four, uniform over empty cells, using src.
func (b Board) SpawnRandomTile(src rng.Source) Board {
	empties := b.CountEmpties()
	if empties == 0 {
		return b
	}

	weights := make([]uint32, 2*empties)
	for i := range weights {
		if i%2 == 0 {
			weights[i] = 9
		} else {
			weights[i] = 1
		}
	}

	events := b.GenTileSpawns()
	return events[rng.WeightedIndex(src, weights)].Board
}

// MakeMove slides in the given direction and spawns a random tile on the
// result, using src. Equivalent to MoveCandidate followed by SpawnRandomTile.
func (b Board) MakeMove(d Direction, src rng.Source) Board {
	return b.MoveCandidate(d).SpawnRandomTile(src)
}

// NewRandom returns a fresh board with two random tiles spawned on an empty
// board, the standard starting position.
func NewRandom(src rng.Source) Board {
	return Empty.SpawnRandomTile(src).SpawnRandomTile(src)
}
