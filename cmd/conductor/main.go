package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/buswatch/buslights/internal/conductor"
	"github.com/buswatch/buslights/internal/config"
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

	sink, err := transport.OpenSink(cfg.SerialDevice(), cfg.SerialBaud(), cfg.CommandAddr())
	if err != nil {
		l.Fatal("open command link", zap.Error(err))
	}
	defer sink.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := conductor.NewConductor(cfg, sink, l)
	if err := c.Run(ctx); err != nil {
		l.Fatal("conductor stopped", zap.Error(err))
	}
	l.Info("conductor stopped")
}
