package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adpulse/internal/adapter/metrics"
	"adpulse/internal/core/port"
)

// Options configure the router. Zero values disable the related feature.
type Options struct {
	// AllowedOrigins enables CORS for the listed origins.
	AllowedOrigins []string
	// Metrics instruments every request.
	Metrics *metrics.HTTP
	// Gatherer is exposed on /metrics.
	Gatherer prometheus.Gatherer
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	svc      port.CreativeUseCase
	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CreativeUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{svc: svc, logger: logger, validate: validator.New()}
	r := chi.NewRouter()

	r.Use(middleware.RequestID, middleware.Recoverer)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", UserIDHeader},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/creatives", func(r chi.Router) {
		r.Use(h.requireIdentity)
		r.Post("/batch", h.handleBatch)
		r.Post("/refresh", h.handleRefresh)
		r.Get("/{adID}", h.handleGetCreative)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
