//go:build !ws281x

package main

import (
	"go.uber.org/zap"

	"github.com/buswatch/buslights/internal/config"
	"github.com/buswatch/buslights/internal/strand"
)

// Without LED hardware the strand renders into an in-memory buffer and the
// mirror stream is the only way to watch it.
func newDriver(cfg *config.Config, logger *zap.Logger) (strand.Driver, func(), error) {
	logger.Info("using in-memory strand buffer", zap.Uint("length", cfg.StrandLength()))
	return strand.NewBuffer(int(cfg.StrandLength())), func() {}, nil
}
