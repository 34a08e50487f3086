package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/buswatch/buslights/internal/config"
	"github.com/buswatch/buslights/internal/engine"
	"github.com/buswatch/buslights/internal/server"
	"github.com/buswatch/buslights/internal/transport"
)

func main() {
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	var err error
	var l *zap.Logger
	if *verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer l.Sync() //nolint:errcheck

	cfg := config.NewConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var src engine.Source
	if dev := cfg.SerialDevice(); dev != "" {
		port, err := transport.OpenSerial(dev, cfg.SerialBaud())
		if err != nil {
			l.Fatal("open serial port", zap.String("device", dev), zap.Error(err))
		}
		defer port.Close()
		src = transport.NewReader(ctx, port)
		l.Info("reading commands from serial", zap.String("device", dev), zap.Int("baud", cfg.SerialBaud()))
	} else {
		tcp, err := transport.ListenTCP(ctx, cfg.CommandAddr(), l)
		if err != nil {
			l.Fatal("listen for commands", zap.String("addr", cfg.CommandAddr()), zap.Error(err))
		}
		src = tcp
		l.Info("reading commands from tcp", zap.String("addr", tcp.Addr().String()))
	}

	driver, closeDriver, err := newDriver(cfg, l)
	if err != nil {
		l.Fatal("init strand driver", zap.Error(err))
	}
	defer closeDriver()

	eng := engine.NewEngine(cfg, src, driver, ctx)
	engineErr := make(chan error, 1)
	go func() { engineErr <- eng.Start() }()

	srv := server.NewServer(cfg, eng, l)
	serverErr := make(chan error, 1)
	go func() { serverErr <- srv.ListenAndServe() }()

	l.Info("controller running",
		zap.Uint("strand_length", cfg.StrandLength()),
		zap.Uint("frame_rate", cfg.FrameRate()),
		zap.Uint("port", cfg.Port()))

	select {
	case err := <-engineErr:
		if err != nil {
			l.Error("engine stopped", zap.Error(err))
		}
	case err := <-serverErr:
		l.Error("could not serve", zap.Error(err))
	case <-ctx.Done():
		l.Info("terminating")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx) //nolint:errcheck
}
