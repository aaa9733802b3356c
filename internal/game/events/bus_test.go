package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daedalus-games/theseus/internal/game/core"
)

func TestBus_SubscribeByType(t *testing.T) {
	bus := NewBus()

	var applied, rejected int
	bus.Subscribe(TypeMoveApplied, func(Event) { applied++ })
	bus.Subscribe(TypeMoveRejected, func(Event) { rejected++ })

	bus.Publish(NewMoveAppliedEvent("s1", core.MoveRight, core.Coordinate{X: 3, Y: 1}, core.Coordinate{X: 5, Y: 1}, 2))
	bus.Publish(NewMoveAppliedEvent("s1", core.MoveDown, core.Coordinate{X: 3, Y: 3}, core.Coordinate{X: 3, Y: 1}, 3))
	bus.Publish(NewMoveRejectedEvent("s1", core.MoveUp, core.Coordinate{X: 3, Y: 3}))

	assert.Equal(t, 2, applied)
	assert.Equal(t, 1, rejected)
}

func TestBus_SubscribeAll(t *testing.T) {
	bus := NewBus()

	var all int
	bus.SubscribeAll(func(Event) { all++ })

	bus.Publish(NewTurnUndoneEvent("s1", 1))
	bus.Publish(NewPhaseChangedEvent("s1", "Playing", "Lost"))

	assert.Equal(t, 2, all)
}

func TestBus_NilBusPublishIsSafe(t *testing.T) {
	var bus *Bus
	assert.NotPanics(t, func() {
		bus.Publish(NewTurnUndoneEvent("s1", 1))
	})
}

func TestEvent_Fields(t *testing.T) {
	e := NewMoveAppliedEvent("s1", core.MoveRight, core.Coordinate{X: 3, Y: 1}, core.Coordinate{X: 5, Y: 1}, 2)

	assert.Equal(t, TypeMoveApplied, e.Type())
	assert.Equal(t, "s1", e.SessionID())
	assert.False(t, e.Timestamp().IsZero())
}
