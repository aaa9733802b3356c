package events

import "github.com/rs/zerolog"

// NewLogHandler returns a handler that writes events to structured logs.
// Wire it with Bus.SubscribeAll to get a debug trail of a whole session.
func NewLogHandler(logger zerolog.Logger) Handler {
	l := logger.With().Str("component", "event_logger").Logger()

	return func(event Event) {
		e := l.Debug().
			Str("event_type", event.Type()).
			Str("session_id", event.SessionID())

		switch ev := event.(type) {
		case *MoveAppliedEvent:
			e = e.Str("move", ev.Move.String()).
				Stringer("player", ev.Player).
				Stringer("minotaur", ev.Minotaur).
				Int("depth", ev.Depth)
		case *MoveRejectedEvent:
			e = e.Str("move", ev.Move.String()).
				Stringer("position", ev.Position)
		case *TurnUndoneEvent:
			e = e.Int("depth", ev.Depth)
		case *PhaseChangedEvent:
			e = e.Str("from", ev.From).Str("to", ev.To)
		}

		e.Msg("Game event")
	}
}
