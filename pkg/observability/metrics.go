package observability

import (
	"context"

	"github.com/aretw0/factors/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors fed by the engine hooks.
type Metrics struct {
	Results     *prometheus.CounterVec
	CacheHits   prometheus.Counter
	Duration    prometheus.Histogram
	Runs        prometheus.Counter
	RunDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Results: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "factors_results_total",
				Help: "Total number of factorized numbers by outcome",
			},
			[]string{"outcome"},
		),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "factors_cache_hits_total",
			Help: "Total number of results served from the cache",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "factors_factorize_duration_seconds",
			Help:    "Duration of a single factorization",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "factors_runs_total",
			Help: "Total number of completed batch runs",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "factors_run_duration_seconds",
			Help: "Wall-clock duration of batch runs",
		}),
	}
	reg.MustRegister(m.Results, m.CacheHits, m.Duration, m.Runs, m.RunDuration)
	return m
}

// Hooks returns lifecycle hooks recording into m.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnResult: func(ctx context.Context, e *domain.ResultEvent) {
			outcome := "not_found"
			if e.Result.Found {
				outcome = "found"
			}
			m.Results.WithLabelValues(outcome).Inc()
			if e.Cached {
				m.CacheHits.Inc()
			}
			m.Duration.Observe(e.Duration.Seconds())
		},
		OnRunComplete: func(ctx context.Context, e *domain.RunEvent) {
			m.Runs.Inc()
			m.RunDuration.Observe(e.Elapsed.Seconds())
		},
	}
}

// Chain merges several hook sets; each callback fires in order.
func Chain(hooks ...domain.Hooks) domain.Hooks {
	return domain.Hooks{
		OnResult: func(ctx context.Context, e *domain.ResultEvent) {
			for _, h := range hooks {
				if h.OnResult != nil {
					h.OnResult(ctx, e)
				}
			}
		},
		OnRunComplete: func(ctx context.Context, e *domain.RunEvent) {
			for _, h := range hooks {
				if h.OnRunComplete != nil {
					h.OnRunComplete(ctx, e)
				}
			}
		},
	}
}
