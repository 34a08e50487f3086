// Package conductor watches the public run-stats feed and drives a strand
// controller over its command link. It owns no rendering: it only decides
// which shift should be lit and which events just happened, and speaks the
// controller's byte protocol.
package conductor

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/buswatch/buslights/internal/protocol"
)

type ConductorConfig interface {
	StatsURL() string
	PollInterval() time.Duration
	EventHold() time.Duration
	IdleType() string
}

// Conductor polls the stats feed on an interval and publishes the derived
// changes on its bus, where the attached commander turns them into wire
// commands. State lives here: the last commanded shift and the previous
// stats sample for delta detection.
type Conductor struct {
	cfg       ConductorConfig
	fetcher   *Fetcher
	bus       *Bus
	commander *Commander
	detach    func()
	logger    *zap.Logger
	now       func() time.Time

	shift protocol.Shift
	prev  *RunStats
}

func NewConductor(cfg ConductorConfig, sink io.Writer, logger *zap.Logger) *Conductor {
	bus := NewBus()
	commander := NewCommander(sink, cfg.EventHold(), logger)
	return &Conductor{
		cfg:       cfg,
		fetcher:   NewFetcher(cfg.StatsURL(), logger),
		bus:       bus,
		commander: commander,
		detach:    commander.Attach(bus),
		logger:    logger,
		now:       time.Now,
		shift:     protocol.ShiftInvalid,
	}
}

// Run polls until the context is cancelled. The first poll happens
// immediately so a freshly started conductor lights the strand without
// waiting out a full interval.
func (c *Conductor) Run(ctx context.Context) error {
	defer c.detach()
	defer c.bus.Close()

	if t, ok := protocol.ParseIdleType(c.cfg.IdleType()); ok {
		c.commander.SetIdleType(t)
	}

	interval := c.cfg.PollInterval()
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.logger.Info("conductor running", zap.Duration("poll_interval", interval))
	c.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.poll(ctx)
		}
	}
}

func (c *Conductor) poll(ctx context.Context) {
	flag := c.fetcher.Omega(ctx)
	next := ResolveShift(flag, c.shift, c.now())
	if next != c.shift {
		c.shift = next
		c.bus.Publish(ShiftChange{Shift: next})
	}

	stats, err := c.fetcher.Stats(ctx)
	if err != nil {
		c.logger.Warn("stats poll failed", zap.Error(err))
		return
	}
	if c.prev != nil {
		for _, ev := range Diff(*c.prev, stats) {
			c.bus.Publish(GameEvent{Event: ev})
		}
	}
	c.prev = &stats
}
