package conductor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buswatch/buslights/internal/protocol"
)

func TestDiffNoMovement(t *testing.T) {
	s := RunStats{Points: 3, Crashes: 1, BusStops: 2, BugSplats: 5}
	assert.Empty(t, Diff(s, s))
}

func TestDiffSingleCounter(t *testing.T) {
	prev := RunStats{Points: 3}
	curr := RunStats{Points: 4}
	assert.Equal(t, []protocol.Event{protocol.EventPoint}, Diff(prev, curr))
}

func TestDiffMultipleCounters(t *testing.T) {
	prev := RunStats{Points: 3, Crashes: 1, BusStops: 2, BugSplats: 5}
	curr := RunStats{Points: 5, Crashes: 2, BusStops: 2, BugSplats: 6}
	want := []protocol.Event{protocol.EventPoint, protocol.EventCrash, protocol.EventBugSplat}
	assert.Equal(t, want, Diff(prev, curr))
}

func TestDiffIgnoresDecrease(t *testing.T) {
	prev := RunStats{Points: 4}
	curr := RunStats{Points: 3}
	assert.Empty(t, Diff(prev, curr))
}
