// Package app wires configuration into the creative pipeline for the
// server, worker and operator binaries.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"adpulse/db/migrations"
	"adpulse/internal/adapter/assetcache"
	"adpulse/internal/adapter/graph"
	"adpulse/internal/adapter/metrics"
	"adpulse/internal/adapter/postgres"
	"adpulse/internal/adapter/s3store"
	"adpulse/internal/adapter/usecase"
	"adpulse/internal/config"
	"adpulse/internal/config/configs"
	"adpulse/internal/core/port"
	"adpulse/internal/db"
)

// NewLogger builds the structured logger described by cfg.
func NewLogger(cfg configs.Logger) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel(), AddSource: cfg.AddSource}
	var handler slog.Handler
	switch cfg.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler).With(slog.String("service", cfg.Service))
}

// Pipeline is the assembled creative use case and the resources it holds.
type Pipeline struct {
	UseCase *usecase.CreativeUseCase
	Pool    *pgxpool.Pool
}

// Close releases the database pool.
func (p *Pipeline) Close() {
	p.Pool.Close()
}

// NewPipeline connects to Postgres and object storage and assembles the use
// case. Migrations run first when cfg.Psql.RunMigrations is set. publisher
// may be nil.
func NewPipeline(ctx context.Context, cfg config.Config, logger *slog.Logger, reg prometheus.Registerer, publisher port.RefreshPublisher) (*Pipeline, error) {
	if cfg.Psql.RunMigrations {
		from, err := db.Migrate(cfg.Psql.Addr.String(), migrations.Version)
		if err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Uint64("from", uint64(from)), slog.Uint64("to", uint64(migrations.Version)))
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}

	storage, err := s3store.New(ctx, cfg.Storage)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("object storage: %w", err)
	}

	pm := metrics.NewPipeline(reg)
	platform := graph.NewClient(cfg.Graph, logger.With(slog.String("component", "graph")), pm)
	assets := assetcache.NewStore(storage, logger.With(slog.String("component", "assetcache")),
		assetcache.WithHTTPClient(&http.Client{Timeout: cfg.Pipeline.DownloadTimeout}),
		assetcache.WithMetrics(pm),
	)

	uc := usecase.NewCreativeUseCase(
		postgres.NewCreativeRepository(pool),
		postgres.NewWorkspaceRepository(pool),
		platform,
		assets,
		usecase.Options{
			PacingDelay: cfg.Pipeline.PacingDelay,
			Logger:      logger.With(slog.String("component", "pipeline")),
			Metrics:     pm,
			Publisher:   publisher,
		},
	)
	return &Pipeline{UseCase: uc, Pool: pool}, nil
}
