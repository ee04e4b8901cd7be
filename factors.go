package factors

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/factors/pkg/domain"
	"github.com/aretw0/factors/pkg/factor"
	"github.com/aretw0/factors/pkg/input"
	"github.com/aretw0/factors/pkg/ports"
	"github.com/aretw0/factors/pkg/report"
)

// Version is the release of the factors module.
const Version = "0.1.0"

// Engine is the high-level entry point for the factors library.
// It wraps the factorizer with an optional cache, lifecycle hooks and a logger.
type Engine struct {
	cache  ports.ResultCache
	hooks  domain.Hooks
	logger *slog.Logger
	now    func() time.Time
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithCache stores and reuses results through c.
func WithCache(c ports.ResultCache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Summary describes a completed run.
type Summary struct {
	Numbers int
	Found   int
	Cached  int
	Elapsed time.Duration
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if eng.now == nil {
		eng.now = time.Now
	}
	return eng
}

// Factorize returns the factor pair of n, consulting the cache first when one is configured.
func (e *Engine) Factorize(ctx context.Context, n int64) (domain.Result, error) {
	r, _, err := e.factorize(ctx, n)
	return r, err
}

func (e *Engine) factorize(ctx context.Context, n int64) (domain.Result, bool, error) {
	start := e.now()

	if e.cache != nil {
		r, err := e.cache.Get(ctx, n)
		switch {
		case err == nil:
			e.emitResult(ctx, r, true, start)
			return r, true, nil
		case !errors.Is(err, domain.ErrCacheMiss):
			e.logger.Warn("cache lookup failed", "n", n, "error", err)
		}
	}

	r, err := factor.Factorize(n)
	if err != nil {
		return domain.Result{}, false, err
	}

	if e.cache != nil {
		if err := e.cache.Put(ctx, r); err != nil {
			e.logger.Warn("cache store failed", "n", n, "error", err)
		}
	}

	e.emitResult(ctx, r, false, start)
	return r, false, nil
}

func (e *Engine) emitResult(ctx context.Context, r domain.Result, cached bool, start time.Time) {
	e.logger.Debug("factorized", "n", r.N, "found", r.Found, "cached", cached)
	if e.hooks.OnResult != nil {
		e.hooks.OnResult(ctx, &domain.ResultEvent{
			Timestamp: e.now(),
			Result:    r,
			Cached:    cached,
			Duration:  e.now().Sub(start),
		})
	}
}

// Process factorizes numbers in order and hands every result to h.
// It does not write the timing line.
func (e *Engine) Process(ctx context.Context, numbers []int64, h report.Handler) (Summary, error) {
	var sum Summary
	for _, n := range numbers {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		r, cached, err := e.factorize(ctx, n)
		if err != nil {
			return sum, err
		}

		sum.Numbers++
		if r.Found {
			sum.Found++
		}
		if cached {
			sum.Cached++
		}

		if err := h.Result(r); err != nil {
			return sum, err
		}
	}
	return sum, nil
}

// RunFile reads every number from path, factorizes them in input order and finishes
// with the elapsed time. The clock starts before the file is read.
//
// When the file is missing or any line is invalid, nothing is written to h and the
// error wraps domain.ErrFileNotFound or a *domain.ParseError.
func (e *Engine) RunFile(ctx context.Context, path string, h report.Handler) (Summary, error) {
	start := e.now()

	numbers, err := input.ReadFile(path)
	if err != nil {
		return Summary{}, err
	}
	e.logger.Info("input loaded", "path", path, "numbers", len(numbers))

	sum, err := e.Process(ctx, numbers, h)
	if err != nil {
		return sum, err
	}

	sum.Elapsed = e.now().Sub(start)
	if err := h.Elapsed(sum.Elapsed); err != nil {
		return sum, err
	}

	e.logger.Info("run complete", "path", path, "numbers", sum.Numbers, "found", sum.Found, "elapsed", sum.Elapsed)
	if e.hooks.OnRunComplete != nil {
		e.hooks.OnRunComplete(ctx, &domain.RunEvent{
			Timestamp: e.now(),
			Source:    path,
			Numbers:   sum.Numbers,
			Found:     sum.Found,
			Elapsed:   sum.Elapsed,
		})
	}
	return sum, nil
}
