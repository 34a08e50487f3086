package conductor

import (
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/buswatch/buslights/internal/protocol"
)

// Commander translates bus events into wire commands on the controller
// link. Event animations loop until stopped, so every start schedules a
// stop after the hold window; a fresh event before the window closes
// supersedes the old one and restarts the clock.
type Commander struct {
	sink   io.Writer
	hold   time.Duration
	logger *zap.Logger

	mu   sync.Mutex
	stop *time.Timer
	seq  uint64
}

func NewCommander(sink io.Writer, hold time.Duration, logger *zap.Logger) *Commander {
	if hold <= 0 {
		hold = 6 * time.Second
	}
	return &Commander{sink: sink, hold: hold, logger: logger}
}

// Attach subscribes the commander to the bus. The returned function
// unsubscribes and cancels any pending event stop.
func (c *Commander) Attach(bus *Bus) func() {
	unsubShift := bus.Subscribe(c.handleShift)
	unsubEvent := bus.Subscribe(c.handleEvent)
	return func() {
		unsubShift()
		unsubEvent()
		c.mu.Lock()
		if c.stop != nil {
			c.stop.Stop()
			c.stop = nil
		}
		c.mu.Unlock()
	}
}

// SetIdleType pushes the idle animation choice to the controller.
func (c *Commander) SetIdleType(t protocol.IdleType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Info("commanding idle type", zap.String("idle_type", t.String()))
	c.write(protocol.Command{Kind: protocol.CmdUpdateConfig, Key: protocol.KeyIdleType, Value: t})
}

func (c *Commander) handleShift(e ShiftChange) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Info("commanding shift", zap.String("shift", e.Shift.String()))
	c.write(protocol.Command{Kind: protocol.CmdSetIdle, Shift: e.Shift})
}

func (c *Commander) handleEvent(e GameEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Info("commanding event", zap.String("event", e.Event.String()), zap.Duration("hold", c.hold))
	if c.stop != nil {
		c.stop.Stop()
	}
	c.write(protocol.Command{Kind: protocol.CmdStartEvent, Event: e.Event})
	c.seq++
	seq := c.seq
	c.stop = time.AfterFunc(c.hold, func() { c.stopEvent(seq) })
}

// stopEvent only acts if no newer event has superseded the one that armed
// its timer. A stale timer that lost the race for the lock must not cut a
// fresh event short.
func (c *Commander) stopEvent(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return
	}
	c.stop = nil
	c.write(protocol.Command{Kind: protocol.CmdStopEvent})
}

// write must be called with mu held.
func (c *Commander) write(cmd protocol.Command) {
	if _, err := c.sink.Write(cmd.Encode()); err != nil {
		c.logger.Error("command write failed", zap.Error(err))
	}
}
