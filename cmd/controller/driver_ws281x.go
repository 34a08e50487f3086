//go:build ws281x

package main

import (
	"go.uber.org/zap"

	"github.com/buswatch/buslights/internal/config"
	"github.com/buswatch/buslights/internal/strand"
)

// Standard PWM pin on the Raspberry Pi header.
const gpioPin = 18

func newDriver(cfg *config.Config, logger *zap.Logger) (strand.Driver, func(), error) {
	dev, err := strand.NewWS281x(gpioPin, int(cfg.StrandLength()), cfg.Brightness())
	if err != nil {
		return nil, nil, err
	}
	logger.Info("driving ws281x strand",
		zap.Int("gpio", gpioPin),
		zap.Uint("length", cfg.StrandLength()),
		zap.Uint8("brightness", cfg.Brightness()))
	return dev, dev.Close, nil
}
