// Package metrics holds the Prometheus collectors of the creative pipeline
// and the HTTP middleware that feeds request metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Record sources for Pipeline.Served.
const (
	SourceStore    = "store"
	SourceUpstream = "upstream"
)

// Pipeline groups the creative pipeline collectors. A nil *Pipeline is a
// valid no-op recorder.
type Pipeline struct {
	served        *prometheus.CounterVec
	itemErrors    *prometheus.CounterVec
	upstreamCalls *prometheus.CounterVec
	assetOutcomes *prometheus.CounterVec
	assetBytes    prometheus.Counter
	chunkDuration prometheus.Histogram
}

// NewPipeline registers the pipeline collectors on reg.
func NewPipeline(reg prometheus.Registerer) *Pipeline {
	f := promauto.With(reg)
	return &Pipeline{
		served: f.NewCounterVec(prometheus.CounterOpts{
			Name: "creatives_served_total",
			Help: "Creative records returned to callers, by source",
		}, []string{"source"}),
		itemErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "creative_item_errors_total",
			Help: "Per-ad failures reported in batch results, by kind",
		}, []string{"kind"}),
		upstreamCalls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Calls to the ad platform, by operation and outcome",
		}, []string{"operation", "outcome"}),
		assetOutcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "asset_cache_outcomes_total",
			Help: "Durable asset copy attempts, by asset kind and outcome",
		}, []string{"kind", "outcome"}),
		assetBytes: f.NewCounter(prometheus.CounterOpts{
			Name: "asset_cache_bytes_total",
			Help: "Bytes written to durable storage",
		}),
		chunkDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "creative_batch_chunk_duration_seconds",
			Help:    "Time spent on one upstream chunk including item processing",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (p *Pipeline) Served(source string, n int) {
	if p == nil || n <= 0 {
		return
	}
	p.served.WithLabelValues(source).Add(float64(n))
}

func (p *Pipeline) ItemError(kind string) {
	if p == nil {
		return
	}
	p.itemErrors.WithLabelValues(kind).Inc()
}

func (p *Pipeline) UpstreamCall(operation, outcome string) {
	if p == nil {
		return
	}
	p.upstreamCalls.WithLabelValues(operation, outcome).Inc()
}

// AssetCached records one asset copy attempt. bytes is counted only for
// stored assets.
func (p *Pipeline) AssetCached(kind, outcome string, bytes int) {
	if p == nil {
		return
	}
	p.assetOutcomes.WithLabelValues(kind, outcome).Inc()
	if outcome == "stored" && bytes > 0 {
		p.assetBytes.Add(float64(bytes))
	}
}

func (p *Pipeline) ObserveChunk(d time.Duration) {
	if p == nil {
		return
	}
	p.chunkDuration.Observe(d.Seconds())
}
