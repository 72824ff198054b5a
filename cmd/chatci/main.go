package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/chatci/chatci/internal/app"
	"github.com/chatci/chatci/internal/console"
	"github.com/chatci/chatci/internal/shared"
	"github.com/chatci/chatci/internal/users"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	if cfg.TestMode {
		logger.Info("test mode detected, skipping console session")
		return
	}

	if err := run(ctx, cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.Error("console session", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *app.Config, logger *slog.Logger, stdin io.Reader, stdout io.Writer) error {
	registry := users.NewRegistry()
	promRegistry := prometheus.NewRegistry()
	metrics := users.NewMetrics(promRegistry)
	defer users.LogSummary(context.WithoutCancel(ctx), logger, promRegistry)
	auditLogger := shared.NewAuditLogger()
	userService := users.NewService(registry, logger, metrics, auditLogger)

	if cfg.SeedUsers {
		added, err := users.Seed(ctx, userService, users.DemoUsers())
		if err != nil {
			return err
		}
		logger.Info("demo users seeded", slog.Int("count", added))
	}

	printer, err := console.NewPrinter(cfg.Lang)
	if err != nil {
		return err
	}
	menu, err := console.NewMenu(console.Options{
		Service: userService,
		History: auditLogger,
		Printer: printer,
		Logger:  logger,
		Stdin:   stdin,
		Stdout:  stdout,
	})
	if err != nil {
		return err
	}

	// Reading stdin blocks, so the session runs aside and a signal ends the
	// process without waiting for the next line.
	done := make(chan error, 1)
	go func() { done <- menu.Run(ctx) }()

	select {
	case err := <-done:
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		return nil
	}
}
