package game

import "github.com/daedalus-games/theseus/internal/game/core"

// Turn is one recorded step of game history: both actor positions plus
// the full move sequence that produced them.
type Turn struct {
	Player   core.Coordinate
	Minotaur core.Coordinate
	Moves    []core.Move
}

// Key returns the configuration this turn occupies
func (t Turn) Key() ConfigKey {
	return ConfigKey{Player: t.Player, Minotaur: t.Minotaur}
}

// extend returns the turn's move list with one more move appended,
// without aliasing the receiver's backing array
func (t Turn) extend(m core.Move) []core.Move {
	moves := make([]core.Move, 0, len(t.Moves)+1)
	moves = append(moves, t.Moves...)
	return append(moves, m)
}

// History is the undo stack of turns. It is append/pop only and always
// holds at least the initial turn, which is the floor of the stack.
type History struct {
	turns []Turn
}

// NewHistory creates a history seeded with the initial turn
func NewHistory(initial Turn) *History {
	return &History{turns: []Turn{initial}}
}

// Push appends a turn as the new current head
func (h *History) Push(t Turn) {
	h.turns = append(h.turns, t)
}

// Undo pops the current head. The initial turn can never be undone;
// undoing at the floor is a no-op and returns false.
func (h *History) Undo() bool {
	if len(h.turns) <= 1 {
		return false
	}
	h.turns = h.turns[:len(h.turns)-1]
	return true
}

// Current returns the head turn
func (h *History) Current() Turn {
	return h.turns[len(h.turns)-1]
}

// Depth returns the number of recorded turns, the initial one included
func (h *History) Depth() int {
	return len(h.turns)
}
