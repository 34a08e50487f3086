package palette

import (
	"testing"

	"github.com/buswatch/buslights/internal/protocol"
	"github.com/buswatch/buslights/internal/strand"
	"github.com/stretchr/testify/assert"
)

func TestShiftColors(t *testing.T) {
	assert.Equal(t, strand.Color(0xed8031), DawnGuard)
	assert.Equal(t, strand.Color(0xb0222a), AlphaFlight)
	assert.Equal(t, strand.Color(0x1573b6), NightWatch)
	assert.Equal(t, strand.Color(0x5f3986), ZetaShift)
}

func TestIdleSequences(t *testing.T) {
	for _, s := range []protocol.Shift{
		protocol.ShiftDawnGuard,
		protocol.ShiftAlphaFlight,
		protocol.ShiftNightWatch,
		protocol.ShiftZetaShift,
	} {
		seq := IdleSequence(s)
		assert.Equal(t, []strand.Color{ShiftColor(s), White}, seq, s.String())
	}

	omega := IdleSequence(protocol.ShiftOmegaShift)
	assert.Equal(t, []strand.Color{DawnGuard, AlphaFlight, NightWatch, ZetaShift}, omega)

	assert.Nil(t, IdleSequence(protocol.ShiftInvalid))
}

func TestEventColors(t *testing.T) {
	assert.Equal(t, Green, EventColor(protocol.EventPoint))
	assert.Equal(t, Red, EventColor(protocol.EventCrash))
	assert.Equal(t, Yellow, EventColor(protocol.EventBusStop))
	assert.Equal(t, Magenta, EventColor(protocol.EventBugSplat))
	assert.Equal(t, Off, EventColor(protocol.EventInvalid))
}
