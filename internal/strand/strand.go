// Package strand models an addressable LED strand as a fixed-length run of
// packed RGB pixels behind a small driver interface.
package strand

import "fmt"

// Color is a packed 0xRRGGBB value.
type Color uint32

func NewColor(r, g, b uint8) Color {
	return (Color(r) << 16) | (Color(g) << 8) | Color(b)
}

func (c Color) R() uint8 {
	return uint8((c >> 16) & 0xff)
}

func (c Color) G() uint8 {
	return uint8((c >> 8) & 0xff)
}

func (c Color) B() uint8 {
	return uint8(c & 0xff)
}

// Scale multiplies each channel by level/255.
func (c Color) Scale(level uint8) Color {
	r := uint32(c.R()) * uint32(level) / 255
	g := uint32(c.G()) * uint32(level) / 255
	b := uint32(c.B()) * uint32(level) / 255
	return NewColor(uint8(r), uint8(g), uint8(b))
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c))
}

// Driver is the write side of a strand. SetPixel stages a pixel; nothing
// reaches the device until Show. Out-of-range indices are dropped.
type Driver interface {
	Len() int
	SetPixel(i int, c Color)
	Show() error
}

// Buffer is an in-memory Driver. It records the last committed frame, which
// makes it the default backend when no hardware is attached and the one the
// tests assert against.
type Buffer struct {
	staged    []Color
	committed []Color
}

func NewBuffer(length int) *Buffer {
	return &Buffer{
		staged:    make([]Color, length),
		committed: make([]Color, length),
	}
}

func (b *Buffer) Len() int {
	return len(b.staged)
}

func (b *Buffer) SetPixel(i int, c Color) {
	if i < 0 || i >= len(b.staged) {
		return
	}
	b.staged[i] = c
}

func (b *Buffer) Show() error {
	copy(b.committed, b.staged)
	return nil
}

// Committed returns the frame as of the last Show.
func (b *Buffer) Committed() []Color {
	out := make([]Color, len(b.committed))
	copy(out, b.committed)
	return out
}
