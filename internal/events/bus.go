package events

import (
	"context"
	"sync"
)

// Bus is an in-process Publisher and Subscriber. It backs single-node
// runs without a NATS server and keeps integration tests hermetic.
type Bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[string]map[int]func(event Event)
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string]map[int]func(event Event)),
	}
}

// Publish - delivers the event synchronously to every handler
// subscribed to its game.
func (that *Bus) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	that.mu.RLock()
	handlers := make([]func(event Event), 0, len(that.handlers[event.Game]))
	for _, handler := range that.handlers[event.Game] {
		handlers = append(handlers, handler)
	}
	that.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}

	return nil
}

func (that *Bus) Subscribe(game string, handler func(event Event)) (Subscription, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.handlers[game] == nil {
		that.handlers[game] = make(map[int]func(event Event))
	}

	id := that.nextID
	that.nextID++
	that.handlers[game][id] = handler

	return &busSubscription{bus: that, game: game, id: id}, nil
}

type busSubscription struct {
	bus  *Bus
	game string
	id   int
}

func (that *busSubscription) Unsubscribe() error {
	that.bus.mu.Lock()
	defer that.bus.mu.Unlock()

	delete(that.bus.handlers[that.game], that.id)

	return nil
}
