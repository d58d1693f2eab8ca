package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beverage-kg/internal/app"
	"beverage-kg/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	bootstrap, cleanup, err := app.Bootstrap(cfg)
	if err != nil {
		log.Fatalf("failed to bootstrap app: %v", err)
	}
	logger := bootstrap.Container.Logger
	defer func() {
		if err := cleanup(); err != nil {
			logger.Errorw("cleanup failed", "error", err)
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		logger.Errorw("invalid HTTP port", "port", cfg.App.HTTPPort, "error", err)
		return
	}
	logger.Infow("http server starting", "addr", addr, "env", cfg.App.Environment)

	errCh := make(chan error, 1)
	go func() {
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Errorw("server stopped", "error", err)
		}
	case sig := <-sigCh:
		logger.Infow("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
			logger.Errorw("shutdown failed", "error", err)
		}
	}
}
