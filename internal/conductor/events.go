package conductor

import "github.com/buswatch/buslights/internal/protocol"

// Event type identifiers for the dispatcher.
const (
	typeShiftChange uint32 = iota + 1
	typeGameEvent
)

// ShiftChange fires when the resolved shift differs from the last one
// commanded to the strand.
type ShiftChange struct {
	Shift protocol.Shift
}

func (e ShiftChange) Type() uint32 { return typeShiftChange }

// GameEvent fires when a stat delta implies an in-game occurrence.
type GameEvent struct {
	Event protocol.Event
}

func (e GameEvent) Type() uint32 { return typeGameEvent }
