package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Chidwan3578/Veridex-Local/internal/app"
	"github.com/Chidwan3578/Veridex-Local/internal/config"
)

func main() {
	_ = godotenv.Load()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	application, cleanup, err := app.Bootstrap(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to bootstrap app: %v", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Printf("cleanup error: %v", err)
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		logger.Fatalf("invalid HTTP port: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Fiber.Listen(addr)
	}()
	logger.Printf("Server | listening addr=%s env=%s", addr, cfg.App.Environment)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatalf("server error: %v", err)
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := application.Fiber.ShutdownWithContext(ctx); err != nil {
			logger.Printf("shutdown error: %v", err)
		}
	}
}
