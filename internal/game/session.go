package game

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/daedalus-games/theseus/internal/game/core"
	"github.com/daedalus-games/theseus/internal/game/events"
)

// ConfigKey identifies a distinct (player, minotaur) configuration. Two
// turns with different move histories that land on the same key are the
// same exploration node, so the key is the unit of solver memoization.
type ConfigKey struct {
	Player   core.Coordinate
	Minotaur core.Coordinate
}

// Session owns all mutable state of one game: the turn history and the
// configuration memo table. The grid, start and finish are fixed for
// the session's lifetime. Sessions are not safe for concurrent use; the
// turn loop is the only mutator.
type Session struct {
	id        string
	grid      core.Grid
	finish    core.Coordinate
	history   *History
	unchecked map[ConfigKey]*MoveSet
	bus       *events.Bus
	logger    zerolog.Logger
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the base logger for the session
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithBus attaches an event bus the session publishes to
func WithBus(bus *events.Bus) Option {
	return func(s *Session) { s.bus = bus }
}

// NewSession creates a session from a parsed maze. The initial turn is
// recorded as the floor of the history and its configuration is
// memoized immediately.
func NewSession(g core.Grid, player, minotaur, finish core.Coordinate, opts ...Option) *Session {
	s := &Session{
		id:        uuid.New().String(),
		grid:      g,
		finish:    finish,
		unchecked: make(map[ConfigKey]*MoveSet),
		logger:    log.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("component", "session").Str("session_id", s.id).Logger()

	initial := Turn{Player: player, Minotaur: minotaur}
	s.history = NewHistory(initial)
	s.uncheckedFor(initial.Key())

	s.logger.Info().
		Stringer("player", player).
		Stringer("minotaur", minotaur).
		Stringer("finish", finish).
		Str("phase", s.Phase().String()).
		Msg("Session created")

	return s
}

// ID returns the session's unique identifier
func (s *Session) ID() string { return s.id }

// Grid returns the session's immutable grid
func (s *Session) Grid() core.Grid { return s.grid }

// Finish returns the goal coordinate
func (s *Session) Finish() core.Coordinate { return s.finish }

// Current returns the head turn of the history
func (s *Session) Current() Turn { return s.history.Current() }

// Depth returns the history depth; 1 means only the initial turn
func (s *Session) Depth() int { return s.history.Depth() }

// Key returns the current configuration
func (s *Session) Key() ConfigKey { return s.Current().Key() }

// Phase returns the phase of the current configuration
func (s *Session) Phase() Phase { return s.PhaseOf(s.Key()) }

// PhaseOf classifies a configuration. A caught player is a loss even if
// the collision happens on the finish tile; the loss check runs first.
func (s *Session) PhaseOf(key ConfigKey) Phase {
	if key.Player.Equal(key.Minotaur) {
		return PhaseLost
	}
	if key.Player.Equal(s.finish) {
		return PhaseWon
	}
	return PhasePlaying
}

// Unchecked returns the memoized unchecked-moves set of the current
// configuration, creating it on first visit.
func (s *Session) Unchecked() *MoveSet {
	return s.uncheckedFor(s.Key())
}

// uncheckedFor memoizes one set per configuration key for the whole
// session. Every later visit to the key, whatever path reached it,
// shares the same set. Terminal configurations get an empty set so the
// explorer never tries a move out of them.
func (s *Session) uncheckedFor(key ConfigKey) *MoveSet {
	if set, ok := s.unchecked[key]; ok {
		return set
	}

	var set *MoveSet
	if s.PhaseOf(key).IsTerminal() {
		set = NewMoveSet()
	} else {
		set = NewMoveSet(core.ValidMoves(s.grid, key.Player)...)
	}
	s.unchecked[key] = set
	return set
}

// ApplyMove routes an actor move through the movement resolver and, when
// accepted, steps the minotaur twice and records the new turn. The move
// is consumed from the current configuration's unchecked set whether or
// not the resolver accepts it, so the explorer never retries it here; a
// move that was never in the set is simply applied without touching it.
// Returns false when the move did not advance the turn.
func (s *Session) ApplyMove(m core.Move) bool {
	if !m.IsActorMove() {
		return false
	}

	cur := s.Current()
	phase := s.Phase()
	if !phase.CanReceiveMoves() {
		s.logger.Debug().
			Str("move", m.String()).
			Str("phase", phase.String()).
			Msg("Move ignored on terminal configuration")
		return false
	}

	s.Unchecked().Remove(m)

	player, ok := core.Apply(s.grid, cur.Player, m)
	if !ok {
		s.logger.Debug().
			Str("move", m.String()).
			Stringer("player", cur.Player).
			Msg("Move rejected by movement resolver")
		s.bus.Publish(events.NewMoveRejectedEvent(s.id, m, cur.Player))
		return false
	}

	// The minotaur is twice as fast: two sequential steps, the second
	// from wherever the first one landed.
	minotaur := pursueStep(s.grid, player, cur.Minotaur)
	minotaur = pursueStep(s.grid, player, minotaur)

	next := Turn{Player: player, Minotaur: minotaur, Moves: cur.extend(m)}
	s.uncheckedFor(next.Key())
	s.history.Push(next)

	s.bus.Publish(events.NewMoveAppliedEvent(s.id, m, player, minotaur, s.Depth()))
	newPhase := s.Phase()
	if newPhase != phase {
		s.bus.Publish(events.NewPhaseChangedEvent(s.id, phase.String(), newPhase.String()))
	}

	s.logger.Debug().
		Str("move", m.String()).
		Stringer("player", player).
		Stringer("minotaur", minotaur).
		Int("depth", s.Depth()).
		Str("phase", newPhase.String()).
		Msg("Move applied")

	return true
}

// Undo pops the most recent turn. The memo table is untouched: consumed
// moves stay consumed for the rest of the session. Undoing at the floor
// is a no-op.
func (s *Session) Undo() bool {
	phase := s.Phase()
	if !s.history.Undo() {
		return false
	}

	s.bus.Publish(events.NewTurnUndoneEvent(s.id, s.Depth()))
	if newPhase := s.Phase(); newPhase != phase {
		s.bus.Publish(events.NewPhaseChangedEvent(s.id, phase.String(), newPhase.String()))
	}
	return true
}
