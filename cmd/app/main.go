package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/Toolbox_Go/internal/catalog"
	"github.com/osse101/Toolbox_Go/internal/config"
	"github.com/osse101/Toolbox_Go/internal/console"
	"github.com/osse101/Toolbox_Go/internal/event"
	"github.com/osse101/Toolbox_Go/internal/history"
	"github.com/osse101/Toolbox_Go/internal/logger"
	"github.com/osse101/Toolbox_Go/internal/metrics"
	"github.com/osse101/Toolbox_Go/internal/server"
	"github.com/osse101/Toolbox_Go/internal/utils"
	"github.com/osse101/Toolbox_Go/internal/workshop"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "toolbox: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	closeLog, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = logger.WithSessionID(ctx, logger.GenerateSessionID())
	log := logger.FromContext(ctx)
	log.Info("Session started", "seed", cfg.RandomSeed, "catalog", cfg.CatalogPath)

	entries, err := catalog.Load(ctx, catalog.Options{
		Path:                  cfg.CatalogPath,
		WearOnInvalidInterval: cfg.TapeWearOnInvalidInterval,
	})
	if err != nil {
		log.Error("Failed to load toolbox catalog", "error", err)
		return err
	}

	bus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().Register(bus)
	store := history.New(cfg.HistorySize, cfg.HistoryTTL)
	store.Register(bus)

	if cfg.MetricsEnabled() {
		srv := server.NewServer(cfg.MetricsPort, cfg.Version)
		go func() {
			if err := srv.Start(); err != nil {
				log.Error("Metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Warn("Metrics server shutdown failed", "error", err)
			}
		}()
	}

	con := console.New(os.Stdin, os.Stdout, console.Options{
		TickInterval: cfg.TickInterval,
		ClearScreen:  cfg.ClearScreen,
		Color:        cfg.Color,
	})
	toolbox := workshop.NewToolbox(
		workshop.New(con, bus, utils.NewRand(cfg.RandomSeed)),
		entries,
		store,
	)

	// A blocked read on stdin cannot observe ctx, so the toolbox runs on its
	// own goroutine and a signal ends the session without waiting for input.
	done := make(chan error, 1)
	go func() { done <- toolbox.Run(ctx) }()

	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
		fmt.Fprintln(os.Stdout)
	}

	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		log.Info("Session ended", "reason", fmt.Sprint(err))
		return nil
	}
	log.Error("Session failed", "error", err)
	return err
}
