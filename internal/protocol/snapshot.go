package protocol

import (
	"errors"

	"github.com/buswatch/buslights/internal/strand"
)

const (
	pixelsOffset  = 6
	bytesPerPixel = 3
)

// Snapshot is the controller state published after each rendered frame,
// mirrored to monitoring clients.
type Snapshot struct {
	Shift       Shift
	Event       Event
	EventActive bool
	IdleType    IdleType
	Pixels      []strand.Color
}

func (s *Snapshot) Encode(b []byte) {
	b[0] = byte(s.Shift)
	b[1] = byte(s.Event)
	if s.EventActive {
		b[2] = 1
	} else {
		b[2] = 0
	}
	b[3] = byte(s.IdleType)

	n := uint16(len(s.Pixels))
	b[4] = byte(n >> 8)
	b[5] = byte(n & 0xff)

	bi := pixelsOffset
	for _, p := range s.Pixels {
		b[bi] = p.R()
		bi += 1
		b[bi] = p.G()
		bi += 1
		b[bi] = p.B()
		bi += 1
	}
}

func (s *Snapshot) EncodeSize() int {
	return pixelsOffset + len(s.Pixels)*bytesPerPixel
}

func (s *Snapshot) Decode(b []byte) error {
	l := len(b)
	if l < pixelsOffset {
		return errors.New("too short")
	}
	s.Shift = Shift(b[0])
	s.Event = Event(b[1])
	s.EventActive = b[2] == 1
	s.IdleType = IdleType(b[3])

	n := (int(b[4]) << 8) | int(b[5])
	if l < pixelsOffset+n*bytesPerPixel {
		return errors.New("byte length does not match pixel count")
	}

	s.Pixels = make([]strand.Color, n)
	bi := pixelsOffset
	for i := range s.Pixels {
		s.Pixels[i] = strand.NewColor(b[bi], b[bi+1], b[bi+2])
		bi += bytesPerPixel
	}
	return nil
}
