package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"adpulse/internal/adapter/rabbitmq"
	"adpulse/internal/app"
	"adpulse/internal/config"
	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// main runs the background refresh worker. It consumes refresh jobs from
// the queue and runs each through the batch pipeline.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	if cfg.AMQP.URL == "" {
		logger.Error("AMQP_URL is required")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	broker, err := rabbitmq.Dial(cfg.AMQP)
	if err != nil {
		logger.Error("broker connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer broker.Close()

	pipeline, err := app.NewPipeline(ctx, cfg, logger, prometheus.NewRegistry(), rabbitmq.NewPublisher(broker))
	if err != nil {
		logger.Error("pipeline setup error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pipeline.Close()

	handle := func(ctx context.Context, job domain.RefreshJob) error {
		res, err := pipeline.UseCase.RefreshCreatives(ctx, job)
		switch {
		case errors.Is(err, port.ErrWorkspaceNotFound), errors.Is(err, port.ErrCredentialUnavailable):
			// Retrying cannot help until the tenant is fixed.
			logger.Warn("refresh job skipped", slog.String("job_id", job.JobID.String()), slog.Any("error", err))
			return nil
		case err != nil:
			return err
		}
		logger.Info("refresh job done",
			slog.String("job_id", job.JobID.String()),
			slog.Int("cached", res.CachedCount),
			slog.Int("fetched", res.FetchedCount),
			slog.Int("errors", len(res.Errors)),
		)
		return nil
	}

	logger.Info("worker running, waiting for jobs", slog.String("queue", cfg.AMQP.Queue))
	if err := rabbitmq.NewConsumer(broker, handle, logger).Run(ctx); err != nil {
		logger.Error("consumer stopped", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker stopped")
}
