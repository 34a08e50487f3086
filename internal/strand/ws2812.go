//go:build tinygo

package strand

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// WS2812 drives a chain of WS2812 pixels on a single GPIO pin. The staged
// frame is flushed in one Write so the chain latches once per Show.
type WS2812 struct {
	dev        ws2812.Device
	brightness uint8
	staged     []Color
	colors     []color.RGBA
}

func NewWS2812(pin machine.Pin, length int, brightness uint8) *WS2812 {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &WS2812{
		dev:        ws2812.New(pin),
		brightness: brightness,
		staged:     make([]Color, length),
		colors:     make([]color.RGBA, length),
	}
}

func (w *WS2812) Len() int {
	return len(w.staged)
}

func (w *WS2812) SetPixel(i int, c Color) {
	if i < 0 || i >= len(w.staged) {
		return
	}
	w.staged[i] = c
}

func (w *WS2812) Show() error {
	for i, c := range w.staged {
		c = c.Scale(w.brightness)
		w.colors[i] = color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xff}
	}
	return w.dev.WriteColors(w.colors)
}
