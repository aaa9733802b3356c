package core

import (
	"fmt"
	"strings"
)

// Move is one token of the input alphabet. The first five are actor
// moves resolved against the grid; quit, undo and auto are meta-commands
// interpreted only by the turn loop.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
	MoveSkip
	MoveQuit
	MoveUndo
	MoveAuto
)

// Wire symbols are the original compass letters: n/s/w/e for the
// directions, d to stand still, q to quit, u to undo, a for auto mode.
var moveSymbols = map[Move]string{
	MoveUp:    "n",
	MoveDown:  "s",
	MoveLeft:  "w",
	MoveRight: "e",
	MoveSkip:  "d",
	MoveQuit:  "q",
	MoveUndo:  "u",
	MoveAuto:  "a",
}

var symbolMoves = func() map[string]Move {
	m := make(map[string]Move, len(moveSymbols))
	for move, sym := range moveSymbols {
		m[sym] = move
	}
	return m
}()

// moveVectors provides the single-step offset for each directional move
var moveVectors = map[Move]Coordinate{
	MoveUp:    {X: 0, Y: -1},
	MoveDown:  {X: 0, Y: 1},
	MoveLeft:  {X: -1, Y: 0},
	MoveRight: {X: 1, Y: 0},
}

// ParseMove converts a wire symbol into a move
func ParseMove(s string) (Move, error) {
	if m, ok := symbolMoves[s]; ok {
		return m, nil
	}
	return MoveSkip, fmt.Errorf("%w: %q", ErrUnknownMove, s)
}

// Symbol returns the wire symbol for the move
func (m Move) Symbol() string {
	if s, ok := moveSymbols[m]; ok {
		return s
	}
	return "?"
}

// IsActorMove reports whether the move is a legal input to the movement
// resolver, as opposed to a meta-command
func (m Move) IsActorMove() bool {
	switch m {
	case MoveUp, MoveDown, MoveLeft, MoveRight, MoveSkip:
		return true
	default:
		return false
	}
}

// String returns the move name for logging
func (m Move) String() string {
	switch m {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveSkip:
		return "skip"
	case MoveQuit:
		return "quit"
	case MoveUndo:
		return "undo"
	case MoveAuto:
		return "auto"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// FormatMoves renders a move sequence as the semicolon-separated wire
// form used on the command line and in the moves line of a frame
func FormatMoves(moves []Move) string {
	syms := make([]string, len(moves))
	for i, m := range moves {
		syms[i] = m.Symbol()
	}
	return strings.Join(syms, ";")
}
