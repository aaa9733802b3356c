package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/daedalus-games/theseus/internal/game/core"
)

// MoveSource yields the next move token to process. Sources report
// io.EOF when drained and core.ErrUnknownMove for input the loop should
// ignore with a re-render.
type MoveSource interface {
	Next() (core.Move, error)
}

// Outcome is the reason the turn loop stopped
type Outcome int

const (
	// OutcomeWin - the player reached the finish
	OutcomeWin Outcome = iota

	// OutcomeLoss - input drained while the minotaur held the player
	OutcomeLoss

	// OutcomeQuit - intentional exit
	OutcomeQuit

	// OutcomeExhausted - auto mode walked the whole reachable space
	OutcomeExhausted

	// OutcomeOutOfInput - input drained mid-game
	OutcomeOutOfInput
)

// String returns the string representation of an Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "Win"
	case OutcomeLoss:
		return "Loss"
	case OutcomeQuit:
		return "Quit"
	case OutcomeExhausted:
		return "Exhausted"
	case OutcomeOutOfInput:
		return "OutOfInput"
	default:
		return fmt.Sprintf("Unknown(%d)", int(o))
	}
}

// Loop drives a session: render, take one move token, apply, repeat.
// Exactly one move is processed per iteration; between input events the
// loop is idle and nothing else mutates the session.
type Loop struct {
	session *Session
	src     MoveSource
	auto    MoveSource
	r       *Renderer
	logger  zerolog.Logger
}

// NewLoop creates a turn loop. auto may be nil, which makes the auto
// meta-command a no-op.
func NewLoop(s *Session, src MoveSource, auto MoveSource, r *Renderer) *Loop {
	return &Loop{
		session: s,
		src:     src,
		auto:    auto,
		r:       r,
		logger:  log.With().Str("component", "loop").Str("session_id", s.ID()).Logger(),
	}
}

// Run processes moves until the game is decided or input ends. A win
// stops the loop immediately; a loss does not, because the player may
// still undo out of it, so on a loss only undo and quit do anything.
func (l *Loop) Run() Outcome {
	for {
		l.r.Frame(l.session)

		if l.session.Phase() == PhaseWon {
			l.logger.Info().Int("depth", l.session.Depth()).Msg("Player reached the finish")
			return OutcomeWin
		}

		m, err := l.src.Next()
		switch {
		case errors.Is(err, io.EOF):
			if l.session.Phase() == PhaseLost {
				return OutcomeLoss
			}
			return OutcomeOutOfInput
		case errors.Is(err, ErrExhausted):
			l.logger.Info().Msg("Exploration exhausted without a win")
			return OutcomeExhausted
		case errors.Is(err, core.ErrUnknownMove):
			continue
		case err != nil:
			l.logger.Error().Err(err).Msg("Input source failed")
			return OutcomeOutOfInput
		}

		switch m {
		case core.MoveQuit:
			l.r.Quit()
			return OutcomeQuit
		case core.MoveUndo:
			l.session.Undo()
		case core.MoveAuto:
			if l.auto != nil {
				l.logger.Info().Msg("Switching to auto mode")
				l.src = l.auto
			}
		default:
			l.session.ApplyMove(m)
		}
	}
}
