// Package eval contains the pluggable position-value functions and the
// gradient update used to train them from TD(0) deltas.
package eval

import "github.com/herohde/afterstate/pkg/board"

// Score is a position value estimate, in the same units as Board.Score.
type Score float64

// Value is a linear function of indexed board features, trainable online.
type Value interface {
	// Eval returns the estimated value of b.
	Eval(b board.Board) Score
	// Learn adds delta, distributed equally across every feature slot b
	// touches, to each of those slots' weights.
	Learn(b board.Board, delta Score)
}
