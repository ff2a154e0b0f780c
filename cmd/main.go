package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"harbour-market/internal/application"
	"harbour-market/pkg/contextx"
	"harbour-market/pkg/logx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.RFC3339,
	}))
	slog.SetDefault(logger)

	ctx = contextx.WithLogger(ctx, logger)

	if err := application.Run(ctx); err != nil {
		logger.Error("application stopped", logx.Error(err))
		os.Exit(1)
	}
}
