package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"placement-engine/internal/app"
	"placement-engine/internal/config"
	"placement-engine/internal/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Init(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: os.Stdout}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	lg := logger.Get().With(logger.String("app", cfg.App.AppName), logger.String("env", cfg.App.Environment))

	bootstrap, cleanup, err := app.Bootstrap(ctx, cfg, lg)
	if err != nil {
		lg.Error(ctx, "failed to bootstrap app", logger.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := cleanup(); err != nil {
			lg.Warn(ctx, "cleanup error", logger.Error(err))
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		lg.Error(ctx, "invalid HTTP port", logger.Error(err))
		return
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info(ctx, "http server listening", logger.String("addr", addr))
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			lg.Error(ctx, "server error", logger.Error(err))
		}
	case sig := <-sigCh:
		lg.Info(ctx, "shutting down", logger.String("signal", sig.String()))
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
			lg.Warn(ctx, "shutdown error", logger.Error(err))
		}
	}
}
