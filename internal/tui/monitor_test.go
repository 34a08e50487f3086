package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buswatch/buslights/internal/palette"
	"github.com/buswatch/buslights/internal/protocol"
	"github.com/buswatch/buslights/internal/strand"
)

func TestRenderStrandMergesRuns(t *testing.T) {
	m := New("localhost:8090")
	m.snap.Pixels = []strand.Color{palette.Red, palette.Red, palette.Red}

	out := m.renderStrand()
	assert.Equal(t, 1, strings.Count(out, "\x1b[38;2;"))
	assert.Equal(t, 3, strings.Count(out, "██"))
}

func TestRenderStrandDarkPixelsAsBlanks(t *testing.T) {
	m := New("localhost:8090")
	m.snap.Pixels = []strand.Color{0, palette.Blue, 0}

	out := m.renderStrand()
	assert.Equal(t, 1, strings.Count(out, "\x1b[38;2;"))
	assert.Contains(t, out, "  ")
}

func TestStateLabel(t *testing.T) {
	idle := protocol.Snapshot{Shift: protocol.ShiftDawnGuard, IdleType: protocol.IdleSlow}
	assert.Equal(t, "Shift: DawnGuard • Idle: Slow", stateLabel(idle))

	active := protocol.Snapshot{Shift: protocol.ShiftDawnGuard, Event: protocol.EventCrash, EventActive: true}
	assert.Equal(t, "Event: Crash", stateLabel(active))
}
