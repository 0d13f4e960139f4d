package main

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/spf13/pflag"

	"github.com/zephyrtronium/vocal"
	"github.com/zephyrtronium/vocal/internal/bus"
	"github.com/zephyrtronium/vocal/internal/config"
	"github.com/zephyrtronium/vocal/internal/logging"
	"github.com/zephyrtronium/vocal/internal/shard"
)

func main() {
	var envfile, level string
	cli.StringVar(&envfile, "env", ".env", "file of VOCAL_* settings to load")
	cli.StringVar(&level, "log", "", "log level: debug, info, warn, error")
	cli.Parse()

	cfg, err := config.Load(envfile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if level == "" {
		level = cfg.LogLevel
	}
	logger := logging.New(os.Stderr, level)
	log.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := bus.Dial(ctx, bus.Options{URL: cfg.BusURL, Proxy: cfg.Proxy})
	if err != nil {
		log.Error("Failed to connect to bus", "err", err)
		os.Exit(1)
	}
	opts := append(cfg.Options(), vocal.Logger(logger))
	s := shard.New(cfg.Shard, vocal.NewContext(opts...), cfg.Format, logger)
	log.Info("Shard running", "name", cfg.Shard, "bus", cfg.BusURL)
	if err := s.Run(ctx, conn, cfg.Reconnect); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Shard stopped", "err", err)
		os.Exit(1)
	}
	log.Info("Shard stopped")
}
