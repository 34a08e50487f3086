// Package palette holds the compiled-in color tables: utility colors, the
// faction color of each shift, and the ordered pixel sequence each shift's
// idle pattern tiles along the strand.
package palette

import (
	"github.com/buswatch/buslights/internal/protocol"
	"github.com/buswatch/buslights/internal/strand"
)

var (
	Red     = strand.NewColor(255, 0, 0)
	Green   = strand.NewColor(0, 255, 0)
	Blue    = strand.NewColor(0, 0, 255)
	Magenta = strand.NewColor(255, 0, 255)
	Yellow  = strand.NewColor(255, 255, 0)
	White   = strand.NewColor(255, 255, 255)
	Off     = strand.Color(0)
)

var (
	DawnGuard   = strand.NewColor(237, 128, 49)
	AlphaFlight = strand.NewColor(176, 34, 42)
	NightWatch  = strand.NewColor(21, 115, 182)
	ZetaShift   = strand.NewColor(95, 57, 134)
)

// ShiftColor returns the faction color of a shift. OmegaShift has no single
// color of its own and, like Invalid, maps to Off.
func ShiftColor(s protocol.Shift) strand.Color {
	switch s {
	case protocol.ShiftDawnGuard:
		return DawnGuard
	case protocol.ShiftAlphaFlight:
		return AlphaFlight
	case protocol.ShiftNightWatch:
		return NightWatch
	case protocol.ShiftZetaShift:
		return ZetaShift
	}
	return Off
}

// IdleSequence returns the ordered color run tiled along the strand while a
// shift's idle pattern is showing. Nil for Invalid.
func IdleSequence(s protocol.Shift) []strand.Color {
	switch s {
	case protocol.ShiftDawnGuard:
		return []strand.Color{DawnGuard, White}
	case protocol.ShiftAlphaFlight:
		return []strand.Color{AlphaFlight, White}
	case protocol.ShiftNightWatch:
		return []strand.Color{NightWatch, White}
	case protocol.ShiftZetaShift:
		return []strand.Color{ZetaShift, White}
	case protocol.ShiftOmegaShift:
		return []strand.Color{DawnGuard, AlphaFlight, NightWatch, ZetaShift}
	}
	return nil
}

// EventColor returns the accent color of an event animation.
func EventColor(e protocol.Event) strand.Color {
	switch e {
	case protocol.EventPoint:
		return Green
	case protocol.EventCrash:
		return Red
	case protocol.EventBusStop:
		return Yellow
	case protocol.EventBugSplat:
		return Magenta
	}
	return Off
}
