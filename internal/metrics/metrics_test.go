package metrics

import (
	"strings"
	"testing"

	"github.com/buswatch/buslights/internal/engine"
	"github.com/buswatch/buslights/internal/protocol"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	stats engine.Stats
	shift protocol.Shift
	event protocol.Event
	on    bool
	idle  protocol.IdleType
}

func (f *fakeEngine) Stats() engine.Stats                 { return f.stats }
func (f *fakeEngine) Shift() protocol.Shift               { return f.shift }
func (f *fakeEngine) ActiveEvent() (protocol.Event, bool) { return f.event, f.on }
func (f *fakeEngine) IdleType() protocol.IdleType         { return f.idle }

func TestEngineCollector(t *testing.T) {
	fe := &fakeEngine{
		stats: engine.Stats{
			CommandsApplied: 7,
			InvalidCommands: 2,
			EventsStarted:   3,
			FramesRendered:  120,
		},
		shift: protocol.ShiftNightWatch,
		event: protocol.EventCrash,
		on:    true,
		idle:  protocol.IdleSlow,
	}

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewEngineCollector(fe)))

	expected := `
# HELP buslights_engine_commands_applied_total Commands decoded and applied to the animation state
# TYPE buslights_engine_commands_applied_total counter
buslights_engine_commands_applied_total 7
# HELP buslights_engine_event_active Whether an event animation currently overrides idle rendering
# TYPE buslights_engine_event_active gauge
buslights_engine_event_active 1
# HELP buslights_engine_state_info Current shift and idle type as labels, value always 1
# TYPE buslights_engine_state_info gauge
buslights_engine_state_info{idle_type="Slow",shift="NightWatch"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"buslights_engine_commands_applied_total",
		"buslights_engine_event_active",
		"buslights_engine_state_info",
	)
	assert.NoError(t, err)
}

func TestEngineCollectorLint(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewEngineCollector(&fakeEngine{})))

	problems, err := testutil.GatherAndLint(reg)
	require.NoError(t, err)
	assert.Empty(t, problems)
}
