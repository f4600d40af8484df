package board

import "fmt"

// Board is a 4x4 grid of tiles packed into a 64-bit word, little-endian by
// (y*4+x): the tile at (x,y) occupies bits [4*(4y+x), 4*(4y+x)+4). Row i
// occupies bits [16i, 16(i+1)). Immutable: every operation returns a new
// Board.
type Board uint64

// Empty is the zero board.
const Empty Board = 0

// RowAt returns row i (0-3) as a Row.
func (b Board) RowAt(i int) Row {
	return Row(uint64(b) >> (16 * uint(i)))
}

// ColumnAt returns column i (0-3) as a Row, built from the four nibbles
// pulled vertically from the board.
func (b Board) ColumnAt(i int) Row {
	bb := uint64(b) >> (4 * uint(i))

	c1 := uint16(bb & 0xF)
	c2 := uint16((bb >> 12) & 0xF0)
	c3 := uint16((bb >> 24) & 0xF00)
	c4 := uint16((bb >> 36) & 0xF000)

	return Row(c4 | c3 | c2 | c1)
}

// At returns the tile exponent at (x,y), each in [0,4).
func (b Board) At(x, y int) uint8 {
	i := uint(4*y + x)
	return uint8((uint64(b) >> (4 * i)) & tileMask)
}

// Score is the sum of the four row scores.
func (b Board) Score() float64 {
	var score float64
	for i := 0; i < 4; i++ {
		score += scoreTable[b.RowAt(i)]
	}
	return score
}

// CountEmpties is the number of empty cells.
func (b Board) CountEmpties() int {
	empties := 0
	for i := 0; i < 4; i++ {
		empties += b.RowAt(i).CountEmpties()
	}
	return empties
}

// HighestTile is the maximum tile exponent present on the board.
func (b Board) HighestTile() uint8 {
	var highest uint8
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if t := b.At(x, y); t > highest {
				highest = t
			}
		}
	}
	return highest
}

// IsDead reports whether no direction changes the board, i.e., the game is over.
func (b Board) IsDead() bool {
	return len(b.GenMoves()) == 0
}

// Transpose swaps rows and columns.
func (b Board) Transpose() Board {
	x := uint64(b)

	a1 := x & 0xF0F00F0FF0F00F0F
	a2 := x & 0x0000F0F00000F0F0
	a3 := x & 0x0F0F00000F0F0000
	a := a1 | (a2 << 12) | (a3 >> 12)

	b1 := a & 0xFF00FF0000FF00FF
	b2 := a & 0x00FF00FF00000000
	b3 := a & 0x00000000FF00FF00

	return Board(b1 | (b2 >> 24) | (b3 << 24))
}

// MoveCandidate returns the board resulting from sliding in the given
// direction, without spawning a new tile. Equal to b itself if the direction
// has no effect.
func (b Board) MoveCandidate(d Direction) Board {
	switch d {
	case Left:
		var res uint64
		for i := 0; i < 4; i++ {
			res |= uint64(leftTable[b.RowAt(i)]) << (16 * uint(i))
		}
		return Board(res)

	case Right:
		var res uint64
		for i := 0; i < 4; i++ {
			res |= uint64(rightTable[b.RowAt(i)]) << (16 * uint(i))
		}
		return Board(res)

	case Up:
		t := b.Transpose()
		var res uint64
		for i := 0; i < 4; i++ {
			res |= upTable[t.RowAt(i)] << (4 * uint(i))
		}
		return Board(res)

	case Down:
		t := b.Transpose()
		var res uint64
		for i := 0; i < 4; i++ {
			res |= downTable[t.RowAt(i)] << (4 * uint(i))
		}
		return Board(res)

	default:
		panic("invalid direction")
	}
}

// Move is a legal direction paired with its resulting afterstate (no spawn).
type Move struct {
	Direction  Direction
	Afterstate Board
}

// GenMoves returns the subset of directions that strictly change the board,
// paired with the resulting afterstate, in stable enumeration order
// (Left, Right, Up, Down).
func (b Board) GenMoves() []Move {
	moves := make([]Move, 0, 4)
	for _, d := range Directions {
		if candidate := b.MoveCandidate(d); candidate != b {
			moves = append(moves, Move{Direction: d, Afterstate: candidate})
		}
	}
	return moves
}

func (b Board) String() string {
	var s string
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			s += fmt.Sprintf("%3d", b.At(x, y))
		}
		s += "\n"
	}
	return s
}
