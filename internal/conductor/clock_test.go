package conductor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/buswatch/buslights/internal/protocol"
)

func pacificTime(hour, min int) time.Time {
	return time.Date(2025, time.November, 14, hour, min, 0, 0, pacific)
}

func TestWallClockShift(t *testing.T) {
	cases := []struct {
		hour, min int
		want      protocol.Shift
	}{
		{0, 0, protocol.ShiftZetaShift},
		{5, 59, protocol.ShiftZetaShift},
		{6, 0, protocol.ShiftDawnGuard},
		{11, 59, protocol.ShiftDawnGuard},
		{12, 0, protocol.ShiftAlphaFlight},
		{17, 59, protocol.ShiftAlphaFlight},
		{18, 0, protocol.ShiftNightWatch},
		{23, 59, protocol.ShiftNightWatch},
	}
	for _, c := range cases {
		got := WallClockShift(pacificTime(c.hour, c.min))
		assert.Equalf(t, c.want, got, "at %02d:%02d", c.hour, c.min)
	}
}

func TestWallClockShiftConvertsZone(t *testing.T) {
	// 03:00 UTC is 19:00 or 20:00 of the previous day in Pacific time.
	utc := time.Date(2025, time.November, 15, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, protocol.ShiftNightWatch, WallClockShift(utc))
}

func TestResolveShiftOmegaOverridesClock(t *testing.T) {
	got := ResolveShift(OmegaOn, protocol.ShiftDawnGuard, pacificTime(9, 0))
	assert.Equal(t, protocol.ShiftOmegaShift, got)
}

func TestResolveShiftUnknownKeepsOmega(t *testing.T) {
	got := ResolveShift(OmegaUnknown, protocol.ShiftOmegaShift, pacificTime(9, 0))
	assert.Equal(t, protocol.ShiftOmegaShift, got)
}

func TestResolveShiftUnknownWithoutOmegaFollowsClock(t *testing.T) {
	got := ResolveShift(OmegaUnknown, protocol.ShiftNightWatch, pacificTime(9, 0))
	assert.Equal(t, protocol.ShiftDawnGuard, got)
}

func TestResolveShiftOffEndsOmega(t *testing.T) {
	got := ResolveShift(OmegaOff, protocol.ShiftOmegaShift, pacificTime(13, 0))
	assert.Equal(t, protocol.ShiftAlphaFlight, got)
}
