package events

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Bus is a synchronous event bus. Publish runs every matching handler on
// the caller's goroutine before returning; the game loop is
// single-threaded so ordering is exactly publish order.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	all      []Handler
	logger   zerolog.Logger
}

// NewBus creates a new event bus instance
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		logger:   log.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], h)
	b.logger.Debug().
		Str("event_type", eventType).
		Msg("Handler added to event bus")
}

// SubscribeAll adds a handler that receives every event
func (b *Bus) SubscribeAll(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.all = append(b.all, h)
	b.logger.Debug().Msg("Catch-all handler added to event bus")
}

// Publish sends an event to all interested handlers synchronously
func (b *Bus) Publish(event Event) {
	if b == nil {
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, h := range b.handlers[event.Type()] {
		h(event)
	}
	for _, h := range b.all {
		h(event)
	}
}
