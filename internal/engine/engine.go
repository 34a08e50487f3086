package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/buswatch/buslights/internal/protocol"
	"github.com/buswatch/buslights/internal/render"
	"github.com/buswatch/buslights/internal/strand"
)

type EngineConfig interface {
	StrandLength() uint
	FrameRate() uint
}

// Source is the engine's view of the command transport. Available reports
// without blocking whether at least one byte is ready; ReadByte blocks until
// a byte arrives and errors only when the transport has failed.
type Source interface {
	Available() bool
	ReadByte() (byte, error)
}

// Stats are cumulative counters since engine start.
type Stats struct {
	CommandsApplied  uint64
	InvalidCommands  uint64
	EventsStarted    uint64
	FramesRendered   uint64
	ShowErrors       uint64
	SnapshotsDropped uint64
}

type Engine interface {
	Output() <-chan []byte
	Shift() protocol.Shift
	ActiveEvent() (protocol.Event, bool)
	IdleType() protocol.IdleType
	Stats() Stats
	Start() error
}

type engine struct {
	ctx      context.Context
	src      Source
	decoder  *protocol.Decoder
	driver   strand.Driver
	renderer *render.Renderer
	state    render.State
	frame    []strand.Color
	period   time.Duration

	snapshot     protocol.Snapshot
	encodeBuffer []byte
	outputChan   chan []byte

	// Mirrors of state for readers outside the loop goroutine.
	shift    atomic.Uint32
	event    atomic.Uint32
	eventOn  atomic.Bool
	idleType atomic.Uint32

	commandsApplied  atomic.Uint64
	invalidCommands  atomic.Uint64
	eventsStarted    atomic.Uint64
	framesRendered   atomic.Uint64
	showErrors       atomic.Uint64
	snapshotsDropped atomic.Uint64
}

func NewEngine(cfg EngineConfig, src Source, driver strand.Driver, ctx context.Context) Engine {
	fps := cfg.FrameRate()
	if fps == 0 {
		fps = 30
	}

	e := &engine{
		ctx:      ctx,
		src:      src,
		decoder:  protocol.NewDecoder(src),
		driver:   driver,
		renderer: render.NewRenderer(),
		state: render.State{
			Shift:    protocol.ShiftInvalid,
			IdleType: protocol.IdleStatic,
		},
		frame:      make([]strand.Color, cfg.StrandLength()),
		period:     time.Second / time.Duration(fps),
		outputChan: make(chan []byte, 2),
	}
	e.storeMirrors()
	e.publishSnapshot()

	return e
}

func (e *engine) Output() <-chan []byte {
	return e.outputChan
}

func (e *engine) Shift() protocol.Shift {
	return protocol.Shift(e.shift.Load())
}

func (e *engine) ActiveEvent() (protocol.Event, bool) {
	return protocol.Event(e.event.Load()), e.eventOn.Load()
}

func (e *engine) IdleType() protocol.IdleType {
	return protocol.IdleType(e.idleType.Load())
}

func (e *engine) Stats() Stats {
	return Stats{
		CommandsApplied:  e.commandsApplied.Load(),
		InvalidCommands:  e.invalidCommands.Load(),
		EventsStarted:    e.eventsStarted.Load(),
		FramesRendered:   e.framesRendered.Load(),
		ShowErrors:       e.showErrors.Load(),
		SnapshotsDropped: e.snapshotsDropped.Load(),
	}
}

// Start runs the frame loop until the context is cancelled or the command
// transport fails. Each tick drains every command already waiting on the
// transport, applies them in arrival order, then renders and commits exactly
// one frame.
func (e *engine) Start() error {
	ticker := time.NewTicker(e.period)
	defer func() {
		ticker.Stop()
		close(e.outputChan)
	}()

	for {
		select {
		case <-e.ctx.Done():
			return nil
		case <-ticker.C:
			if err := e.drainCommands(); err != nil {
				return fmt.Errorf("command transport failed: %w", err)
			}
			e.renderFrame()
		}
	}
}

func (e *engine) drainCommands() error {
	for e.src.Available() {
		cmd, err := e.decoder.Next()
		if err != nil {
			return err
		}
		e.apply(cmd)
	}
	return nil
}

func (e *engine) apply(cmd protocol.Command) {
	switch cmd.Kind {
	case protocol.CmdStartEvent:
		e.state.Event = cmd.Event
		e.state.EventActive = true
		e.eventsStarted.Add(1)
	case protocol.CmdStopEvent:
		e.state.EventActive = false
	case protocol.CmdSetIdle:
		if cmd.Shift == protocol.ShiftInvalid {
			e.invalidCommands.Add(1)
			return
		}
		e.state.Shift = cmd.Shift
	case protocol.CmdUpdateConfig:
		if cmd.Key != protocol.KeyIdleType || cmd.Value == protocol.IdleInvalid {
			e.invalidCommands.Add(1)
			return
		}
		e.state.IdleType = cmd.Value
	default:
		e.invalidCommands.Add(1)
		return
	}

	e.commandsApplied.Add(1)
	e.storeMirrors()
}

func (e *engine) renderFrame() {
	e.renderer.Frame(e.frame, e.state)
	for i, c := range e.frame {
		e.driver.SetPixel(i, c)
	}
	if err := e.driver.Show(); err != nil {
		e.showErrors.Add(1)
	}
	e.framesRendered.Add(1)
	e.publishSnapshot()
}

func (e *engine) publishSnapshot() {
	e.snapshot.Shift = e.state.Shift
	e.snapshot.Event = e.state.Event
	e.snapshot.EventActive = e.state.EventActive
	e.snapshot.IdleType = e.state.IdleType
	e.snapshot.Pixels = e.frame

	encodeSize := e.snapshot.EncodeSize()
	if cap(e.encodeBuffer) < encodeSize {
		e.encodeBuffer = make([]byte, encodeSize)
	}
	e.encodeBuffer = e.encodeBuffer[:encodeSize]
	e.snapshot.Encode(e.encodeBuffer)
	out := append([]byte(nil), e.encodeBuffer...)

	select {
	case e.outputChan <- out:
	default:
		e.snapshotsDropped.Add(1)
	}
}

func (e *engine) storeMirrors() {
	e.shift.Store(uint32(e.state.Shift))
	e.event.Store(uint32(e.state.Event))
	e.eventOn.Store(e.state.EventActive)
	e.idleType.Store(uint32(e.state.IdleType))
}
