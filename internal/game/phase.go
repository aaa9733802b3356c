package game

import "fmt"

// Phase represents the current phase of a session
type Phase int

const (
	// PhasePlaying - the player is still free and not yet at the finish
	PhasePlaying Phase = iota

	// PhaseWon - the player reached the finish tile
	PhaseWon

	// PhaseLost - the minotaur caught the player
	PhaseLost
)

// String returns the string representation of a Phase
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseWon:
		return "Won"
	case PhaseLost:
		return "Lost"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// IsTerminal returns true if the phase represents a finished game
func (p Phase) IsTerminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// CanReceiveMoves returns true if actor moves may be applied in this
// phase; terminal configurations only accept undo and quit
func (p Phase) CanReceiveMoves() bool {
	return p == PhasePlaying
}
