package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portal-api/internal/app"
	"portal-api/internal/config"
	"portal-api/internal/logger"
	"portal-api/internal/telemetry"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "portal-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.App.Environment)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.App.AppName, cfg.Telemetry.CollectorURL)
	if err != nil {
		log.Warn("[Main] tracing disabled", zap.Error(err))
		shutdownTracer = func(context.Context) error { return nil }
	}

	bootstrap, cleanup, err := app.Bootstrap(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("bootstrap app: %w", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.Warn("[Main] cleanup error", zap.Error(err))
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return fmt.Errorf("invalid HTTP port: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		bootstrap.Container.Hub.Run(gctx)
		return nil
	})

	g.Go(func() error {
		log.Info("[Main] listening", zap.String("addr", addr))
		return bootstrap.Fiber.Listen(addr)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := bootstrap.Fiber.ShutdownWithContext(shutdownCtx)
		return errors.Join(err, shutdownTracer(shutdownCtx))
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("[Main] stopped")
	return nil
}
