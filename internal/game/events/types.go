package events

import (
	"time"

	"github.com/daedalus-games/theseus/internal/game/core"
)

// Event is the base interface for all game events
type Event interface {
	// Type returns the event type as a string for filtering and logging
	Type() string
	// Timestamp returns when the event occurred
	Timestamp() time.Time
	// SessionID returns the ID of the session this event belongs to
	SessionID() string
}

// Handler is a function that processes events
type Handler func(Event)

// Event type strings
const (
	TypeMoveApplied  = "move.applied"
	TypeMoveRejected = "move.rejected"
	TypeTurnUndone   = "turn.undone"
	TypePhaseChanged = "phase.changed"
)

// BaseEvent provides common fields for all events
type BaseEvent struct {
	EventType string    `json:"type"`
	Time      time.Time `json:"timestamp"`
	Session   string    `json:"session_id"`
}

// Type implements Event interface
func (e BaseEvent) Type() string {
	return e.EventType
}

// Timestamp implements Event interface
func (e BaseEvent) Timestamp() time.Time {
	return e.Time
}

// SessionID implements Event interface
func (e BaseEvent) SessionID() string {
	return e.Session
}

func newBase(eventType, sessionID string) BaseEvent {
	return BaseEvent{
		EventType: eventType,
		Time:      time.Now(),
		Session:   sessionID,
	}
}

// MoveAppliedEvent is published after an accepted player move, once the
// minotaur has taken its double step and the new turn has been recorded
type MoveAppliedEvent struct {
	BaseEvent
	Move     core.Move       `json:"move"`
	Player   core.Coordinate `json:"player"`
	Minotaur core.Coordinate `json:"minotaur"`
	Depth    int             `json:"depth"`
}

// NewMoveAppliedEvent creates a move applied event
func NewMoveAppliedEvent(sessionID string, move core.Move, player, minotaur core.Coordinate, depth int) *MoveAppliedEvent {
	return &MoveAppliedEvent{
		BaseEvent: newBase(TypeMoveApplied, sessionID),
		Move:      move,
		Player:    player,
		Minotaur:  minotaur,
		Depth:     depth,
	}
}

// MoveRejectedEvent is published when the movement resolver refuses a move
type MoveRejectedEvent struct {
	BaseEvent
	Move     core.Move       `json:"move"`
	Position core.Coordinate `json:"position"`
}

// NewMoveRejectedEvent creates a move rejected event
func NewMoveRejectedEvent(sessionID string, move core.Move, position core.Coordinate) *MoveRejectedEvent {
	return &MoveRejectedEvent{
		BaseEvent: newBase(TypeMoveRejected, sessionID),
		Move:      move,
		Position:  position,
	}
}

// TurnUndoneEvent is published after a successful undo
type TurnUndoneEvent struct {
	BaseEvent
	Depth int `json:"depth"`
}

// NewTurnUndoneEvent creates a turn undone event
func NewTurnUndoneEvent(sessionID string, depth int) *TurnUndoneEvent {
	return &TurnUndoneEvent{
		BaseEvent: newBase(TypeTurnUndone, sessionID),
		Depth:     depth,
	}
}

// PhaseChangedEvent is published when a move or undo changes the phase
type PhaseChangedEvent struct {
	BaseEvent
	From string `json:"from"`
	To   string `json:"to"`
}

// NewPhaseChangedEvent creates a phase changed event
func NewPhaseChangedEvent(sessionID, from, to string) *PhaseChangedEvent {
	return &PhaseChangedEvent{
		BaseEvent: newBase(TypePhaseChanged, sessionID),
		From:      from,
		To:        to,
	}
}
