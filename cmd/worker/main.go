// Command worker consumes reservation events from RabbitMQ and appends
// one line per event to the reservation log.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iliyamo/room-escape-reservation/internal/config"
	"github.com/iliyamo/room-escape-reservation/internal/queue"
)

func main() {
	zc := zap.NewProductionConfig()
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	log, err := zc.Build()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg := config.LoadWorker()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &queue.Consumer{URL: cfg.RabbitMQURL, LogPath: cfg.EventLogPath, Log: log.Named("worker")}
	log.Info("worker started", zap.String("queue", queue.ReservationQueue), zap.String("log", cfg.EventLogPath))
	if err := c.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("consumer stopped", zap.Error(err))
	}
	log.Info("worker stopped")
}
