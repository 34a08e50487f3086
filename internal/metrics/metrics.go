// Package metrics exposes engine counters as prometheus metrics. The engine
// itself stays free of the prometheus dependency; this collector reads its
// counters on scrape.
package metrics

import (
	"github.com/buswatch/buslights/internal/engine"
	"github.com/buswatch/buslights/internal/protocol"
	"github.com/prometheus/client_golang/prometheus"
)

type EngineStats interface {
	Stats() engine.Stats
	Shift() protocol.Shift
	ActiveEvent() (protocol.Event, bool)
	IdleType() protocol.IdleType
}

type EngineCollector struct {
	engine EngineStats

	commandsApplied  *prometheus.Desc
	commandsInvalid  *prometheus.Desc
	eventsStarted    *prometheus.Desc
	framesRendered   *prometheus.Desc
	showErrors       *prometheus.Desc
	snapshotsDropped *prometheus.Desc
	eventActive      *prometheus.Desc
	stateInfo        *prometheus.Desc
}

func NewEngineCollector(e EngineStats) *EngineCollector {
	return &EngineCollector{
		engine: e,
		commandsApplied: prometheus.NewDesc(
			"buslights_engine_commands_applied_total",
			"Commands decoded and applied to the animation state",
			nil, nil),
		commandsInvalid: prometheus.NewDesc(
			"buslights_engine_commands_invalid_total",
			"Bytes or operands that decoded to no valid command and were discarded",
			nil, nil),
		eventsStarted: prometheus.NewDesc(
			"buslights_engine_events_started_total",
			"Event animations started",
			nil, nil),
		framesRendered: prometheus.NewDesc(
			"buslights_engine_frames_rendered_total",
			"Frames rendered and committed to the strand",
			nil, nil),
		showErrors: prometheus.NewDesc(
			"buslights_engine_show_errors_total",
			"Frame commits rejected by the strand driver",
			nil, nil),
		snapshotsDropped: prometheus.NewDesc(
			"buslights_engine_snapshots_dropped_total",
			"State snapshots dropped because no mirror consumer kept up",
			nil, nil),
		eventActive: prometheus.NewDesc(
			"buslights_engine_event_active",
			"Whether an event animation currently overrides idle rendering",
			nil, nil),
		stateInfo: prometheus.NewDesc(
			"buslights_engine_state_info",
			"Current shift and idle type as labels, value always 1",
			[]string{"shift", "idle_type"}, nil),
	}
}

func (c *EngineCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.commandsApplied
	ch <- c.commandsInvalid
	ch <- c.eventsStarted
	ch <- c.framesRendered
	ch <- c.showErrors
	ch <- c.snapshotsDropped
	ch <- c.eventActive
	ch <- c.stateInfo
}

func (c *EngineCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.engine.Stats()
	ch <- prometheus.MustNewConstMetric(c.commandsApplied, prometheus.CounterValue, float64(stats.CommandsApplied))
	ch <- prometheus.MustNewConstMetric(c.commandsInvalid, prometheus.CounterValue, float64(stats.InvalidCommands))
	ch <- prometheus.MustNewConstMetric(c.eventsStarted, prometheus.CounterValue, float64(stats.EventsStarted))
	ch <- prometheus.MustNewConstMetric(c.framesRendered, prometheus.CounterValue, float64(stats.FramesRendered))
	ch <- prometheus.MustNewConstMetric(c.showErrors, prometheus.CounterValue, float64(stats.ShowErrors))
	ch <- prometheus.MustNewConstMetric(c.snapshotsDropped, prometheus.CounterValue, float64(stats.SnapshotsDropped))

	active := 0.0
	if _, on := c.engine.ActiveEvent(); on {
		active = 1.0
	}
	ch <- prometheus.MustNewConstMetric(c.eventActive, prometheus.GaugeValue, active)
	ch <- prometheus.MustNewConstMetric(c.stateInfo, prometheus.GaugeValue, 1,
		c.engine.Shift().String(), c.engine.IdleType().String())
}
