// Package render turns animation state into strand frames.
package render

import (
	"github.com/buswatch/buslights/internal/palette"
	"github.com/buswatch/buslights/internal/protocol"
	"github.com/buswatch/buslights/internal/strand"
)

// State is the animation state a frame is rendered from. EventActive marks
// whether Event holds a live animation; Event is meaningless without it.
type State struct {
	Shift       protocol.Shift
	Event       protocol.Event
	EventActive bool
	IdleType    protocol.IdleType
}

// Idle phase advance, in frames per one-pixel step.
const (
	slowFramesPerStep = 8
	fastFramesPerStep = 2
)

// step is one keyframe of an event animation: the strand is filled with the
// event's accent color when lit, all-off otherwise, held for hold frames.
type step struct {
	lit  bool
	hold uint64
}

func choreography(e protocol.Event) []step {
	switch e {
	case protocol.EventPoint:
		return []step{{true, 3}, {false, 2}, {true, 3}, {false, 10}}
	case protocol.EventCrash:
		return []step{{true, 2}, {false, 2}, {true, 2}, {false, 2}, {true, 2}, {false, 8}}
	case protocol.EventBusStop:
		return []step{{true, 10}, {false, 6}}
	case protocol.EventBugSplat:
		return []step{{true, 4}, {false, 3}, {true, 2}, {false, 12}}
	}
	return nil
}

// Renderer computes one frame per call. It owns the visual phase state: the
// running frame counter behind Slow/Fast idle scrolling and the progress of
// the active event's keyframe cycle. Semantic state stays with the caller.
type Renderer struct {
	tick       uint64
	eventTick  uint64
	lastEvent  protocol.Event
	lastActive bool
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Frame fills dst with the pixels for the current frame. An active event
// always wins over idle rendering; idle tiles the shift's palette sequence,
// with the tiling phase advancing per the idle type.
func (r *Renderer) Frame(dst []strand.Color, s State) {
	if s.EventActive {
		if !r.lastActive || r.lastEvent != s.Event {
			r.eventTick = 0
		}
		r.renderEvent(dst, s.Event)
		r.eventTick++
	} else {
		r.renderIdle(dst, s)
	}

	r.lastEvent = s.Event
	r.lastActive = s.EventActive
	r.tick++
}

func (r *Renderer) renderEvent(dst []strand.Color, e protocol.Event) {
	steps := choreography(e)
	if len(steps) == 0 {
		fill(dst, palette.Off)
		return
	}

	var cycle uint64
	for _, st := range steps {
		cycle += st.hold
	}
	pos := r.eventTick % cycle
	for _, st := range steps {
		if pos < st.hold {
			if st.lit {
				fill(dst, palette.EventColor(e))
			} else {
				fill(dst, palette.Off)
			}
			return
		}
		pos -= st.hold
	}
}

func (r *Renderer) renderIdle(dst []strand.Color, s State) {
	if s.IdleType == protocol.IdleOff {
		fill(dst, palette.Off)
		return
	}

	seq := palette.IdleSequence(s.Shift)
	if len(seq) == 0 {
		fill(dst, palette.Off)
		return
	}

	phase := 0
	switch s.IdleType {
	case protocol.IdleSlow:
		phase = int(r.tick/slowFramesPerStep) % len(seq)
	case protocol.IdleFast:
		phase = int(r.tick/fastFramesPerStep) % len(seq)
	}

	for i := range dst {
		dst[i] = seq[(i+phase)%len(seq)]
	}
}

func fill(dst []strand.Color, c strand.Color) {
	for i := range dst {
		dst[i] = c
	}
}
