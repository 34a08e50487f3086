//go:build ws281x

package strand

import (
	"fmt"

	ws2811 "github.com/rpi-ws281x/rpi-ws281x-go"
)

// WS281x drives a strand from a Raspberry Pi PWM pin via the ws281x kernel
// interface. Requires root.
type WS281x struct {
	dev *ws2811.WS2811
}

func NewWS281x(gpioPin, length int, brightness uint8) (*WS281x, error) {
	opt := ws2811.DefaultOptions
	opt.Channels[0].GpioPin = gpioPin
	opt.Channels[0].LedCount = length
	opt.Channels[0].Brightness = int(brightness)

	dev, err := ws2811.MakeWS2811(&opt)
	if err != nil {
		return nil, fmt.Errorf("make ws2811: %w", err)
	}
	if err := dev.Init(); err != nil {
		return nil, fmt.Errorf("init ws2811: %w", err)
	}
	return &WS281x{dev: dev}, nil
}

func (w *WS281x) Len() int {
	return len(w.dev.Leds(0))
}

func (w *WS281x) SetPixel(i int, c Color) {
	leds := w.dev.Leds(0)
	if i < 0 || i >= len(leds) {
		return
	}
	leds[i] = uint32(c)
}

func (w *WS281x) Show() error {
	return w.dev.Render()
}

func (w *WS281x) Close() {
	w.dev.Fini()
}
