package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpadapter "adpulse/internal/adapter/http"
	"adpulse/internal/adapter/metrics"
	"adpulse/internal/adapter/rabbitmq"
	"adpulse/internal/app"
	"adpulse/internal/config"
	"adpulse/internal/core/port"
)

// main is the entry point of the creative API server. It loads
// configuration, wires the pipeline, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var publisher port.RefreshPublisher
	if cfg.AMQP.URL != "" {
		broker, err := rabbitmq.Dial(cfg.AMQP)
		if err != nil {
			logger.Error("broker connection error", slog.Any("error", err))
			return
		}
		defer broker.Close()
		publisher = rabbitmq.NewPublisher(broker)
	} else {
		logger.Warn("AMQP_URL not set, background refresh disabled")
	}

	pipeline, err := app.NewPipeline(ctx, cfg, logger, reg, publisher)
	if err != nil {
		logger.Error("pipeline setup error", slog.Any("error", err))
		return
	}
	defer pipeline.Close()

	handler := httpadapter.NewHandler(pipeline.UseCase, logger, httpadapter.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Metrics:        metrics.NewHTTP(reg),
		Gatherer:       reg,
	})
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
