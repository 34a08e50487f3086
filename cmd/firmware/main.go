//go:build tinygo

package main

import (
	"context"
	"machine"
	"time"

	"github.com/buswatch/buslights/internal/engine"
	"github.com/buswatch/buslights/internal/strand"
)

const (
	strandLength = 60
	brightness   = 128
	frameRate    = 30
	baudRate     = 9600
)

// uartSource adapts the hardware UART to the engine's command source. The
// hardware ReadByte errors on an empty buffer, so blocking is done here by
// polling with a scheduler yield in between.
type uartSource struct {
	uart *machine.UART
}

func (s uartSource) Available() bool {
	return s.uart.Buffered() > 0
}

func (s uartSource) ReadByte() (byte, error) {
	for {
		if b, err := s.uart.ReadByte(); err == nil {
			return b, nil
		}
		time.Sleep(time.Millisecond)
	}
}

type firmwareConfig struct{}

func (firmwareConfig) StrandLength() uint { return strandLength }
func (firmwareConfig) FrameRate() uint    { return frameRate }

func main() {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: baudRate,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for i := 0; i < 3; i++ {
		led.High()
		time.Sleep(100 * time.Millisecond)
		led.Low()
		time.Sleep(100 * time.Millisecond)
	}

	// GP2 keeps the strand clear of the UART pins.
	driver := strand.NewWS2812(machine.GP2, strandLength, brightness)

	eng := engine.NewEngine(firmwareConfig{}, uartSource{uart: uart}, driver, context.Background())
	if err := eng.Start(); err != nil {
		for {
			led.High()
			time.Sleep(50 * time.Millisecond)
			led.Low()
			time.Sleep(50 * time.Millisecond)
		}
	}
}
