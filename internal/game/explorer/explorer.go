// Package explorer implements the automatic solver: a depth-first walk
// of the reachable (player, minotaur) configuration graph with implicit
// backtracking through the session's undo stack.
package explorer

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/daedalus-games/theseus/internal/game"
	"github.com/daedalus-games/theseus/internal/game/core"
)

// Explorer picks moves for the turn loop. Each configuration's
// unchecked-moves set lives in the session and is shared across every
// path that reaches that configuration, so the walk covers the full
// state graph without repeating an already-consumed move.
type Explorer struct {
	session  *game.Session
	rng      *rand.Rand
	logger   zerolog.Logger
	maxSteps int
	steps    int
}

// Option configures an Explorer
type Option func(*Explorer)

// WithMaxSteps caps the number of moves the explorer will pick; 0 means
// unlimited. When the cap is hit the walk reports exhaustion.
func WithMaxSteps(n int) Option {
	return func(e *Explorer) { e.maxSteps = n }
}

// New creates an explorer for the session. A nil rng is seeded from the
// clock; tests inject a fixed-seed rng for reproducible walks.
func New(s *game.Session, rng *rand.Rand, opts ...Option) *Explorer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e := &Explorer{
		session: s,
		rng:     rng,
		logger:  log.With().Str("component", "explorer").Str("session_id", s.ID()).Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Next returns the explorer's next command for the turn loop.
//
// A terminal configuration, or one whose unchecked set has been drained,
// is backtracked past with an undo; when that undo would fall off the
// floor of the history the whole reachable space is exhausted. Otherwise
// one move is removed uniformly at random from the unchecked set before
// it is attempted, so it is never offered again from this configuration
// even if the resolver rejects it.
func (e *Explorer) Next() (core.Move, error) {
	if e.maxSteps > 0 && e.steps >= e.maxSteps {
		e.logger.Warn().Int("steps", e.steps).Msg("Step budget spent")
		return core.MoveSkip, game.ErrExhausted
	}

	if e.session.Phase().IsTerminal() || e.session.Unchecked().Empty() {
		if e.session.Depth() <= 1 {
			return core.MoveSkip, game.ErrExhausted
		}
		return core.MoveUndo, nil
	}

	m, _ := e.session.Unchecked().Pick(e.rng)
	e.steps++

	e.logger.Debug().
		Str("move", m.String()).
		Int("depth", e.session.Depth()).
		Int("remaining", e.session.Unchecked().Len()).
		Msg("Explorer picked move")

	return m, nil
}

// Steps returns how many moves the explorer has picked so far
func (e *Explorer) Steps() int {
	return e.steps
}
