package game

import (
	"math/rand"

	"github.com/daedalus-games/theseus/internal/game/core"
)

// MoveSet holds the moves not yet attempted from a configuration. It is
// backed by a slice so that picking with a seeded *rand.Rand is
// reproducible run to run.
type MoveSet struct {
	moves []core.Move
}

// NewMoveSet creates a set holding the given moves
func NewMoveSet(moves ...core.Move) *MoveSet {
	s := &MoveSet{moves: make([]core.Move, len(moves))}
	copy(s.moves, moves)
	return s
}

// Len returns the number of moves left in the set
func (s *MoveSet) Len() int {
	return len(s.moves)
}

// Empty reports whether every move has been consumed
func (s *MoveSet) Empty() bool {
	return len(s.moves) == 0
}

// Contains checks set membership
func (s *MoveSet) Contains(m core.Move) bool {
	for _, have := range s.moves {
		if have == m {
			return true
		}
	}
	return false
}

// Remove deletes a move from the set, reporting whether it was present
func (s *MoveSet) Remove(m core.Move) bool {
	for i, have := range s.moves {
		if have == m {
			s.moves = append(s.moves[:i], s.moves[i+1:]...)
			return true
		}
	}
	return false
}

// Pick removes and returns a uniformly chosen move. The second return
// is false when the set is empty.
func (s *MoveSet) Pick(rng *rand.Rand) (core.Move, bool) {
	if len(s.moves) == 0 {
		return core.MoveSkip, false
	}
	i := rng.Intn(len(s.moves))
	m := s.moves[i]
	s.moves = append(s.moves[:i], s.moves[i+1:]...)
	return m, true
}

// Moves returns a copy of the remaining moves
func (s *MoveSet) Moves() []core.Move {
	out := make([]core.Move, len(s.moves))
	copy(out, s.moves)
	return out
}
