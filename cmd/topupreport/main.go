package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dalemusser/topupreport/internal/app/bootstrap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	logger, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := bootstrap.Run(ctx, logger, level); err != nil {
		logger.Error("report generation failed", zap.Error(err))
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
	stop()
	_ = logger.Sync()
}
