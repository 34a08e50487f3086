package conductor

import "github.com/kelindar/event"

// BusEvent is implemented by everything the conductor publishes.
type BusEvent interface {
	Type() uint32
}

// Bus wraps the kelindar/event dispatcher for conductor-internal fan-out.
type Bus struct {
	dispatcher *event.Dispatcher
}

func NewBus() *Bus {
	return &Bus{dispatcher: event.NewDispatcher()}
}

// Publish delivers an event to all subscribers of its concrete type.
func (b *Bus) Publish(ev BusEvent) {
	switch e := ev.(type) {
	case ShiftChange:
		event.Publish(b.dispatcher, e)
	case GameEvent:
		event.Publish(b.dispatcher, e)
	}
}

// Subscribe registers a handler keyed by its parameter type and returns an
// unsubscribe function.
func (b *Bus) Subscribe(handler any) func() {
	switch h := handler.(type) {
	case func(ShiftChange):
		return event.Subscribe(b.dispatcher, h)
	case func(GameEvent):
		return event.Subscribe(b.dispatcher, h)
	default:
		return func() {}
	}
}

func (b *Bus) Close() error {
	return b.dispatcher.Close()
}
