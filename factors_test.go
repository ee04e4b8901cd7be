package factors_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/factors"
	"github.com/aretw0/factors/pkg/adapters/memory"
	"github.com/aretw0/factors/pkg/domain"
	"github.com/aretw0/factors/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time { return t0 }
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numbers.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunFile_OrderPreserved(t *testing.T) {
	var out bytes.Buffer
	eng := factors.New(factors.WithClock(fixedClock()))

	sum, err := eng.RunFile(context.Background(), writeInput(t, "12\n13\n15\n"), report.NewTextHandler(&out))
	require.NoError(t, err)

	assert.Equal(t, "12=2*6\n15=3*5\nTime taken: 0.000 seconds.\n", out.String())
	assert.Equal(t, 3, sum.Numbers)
	assert.Equal(t, 2, sum.Found)
}

func TestRunFile_PrimeOnly(t *testing.T) {
	var out bytes.Buffer
	eng := factors.New(factors.WithClock(fixedClock()))

	_, err := eng.RunFile(context.Background(), writeInput(t, "17\n"), report.NewTextHandler(&out))
	require.NoError(t, err)
	assert.Equal(t, "Time taken: 0.000 seconds.\n", out.String())
}

func TestRunFile_Square(t *testing.T) {
	var out bytes.Buffer
	eng := factors.New(factors.WithClock(fixedClock()))

	_, err := eng.RunFile(context.Background(), writeInput(t, "4"), report.NewTextHandler(&out))
	require.NoError(t, err)
	assert.Equal(t, "4=2*2\nTime taken: 0.000 seconds.\n", out.String())
}

func TestRunFile_Missing(t *testing.T) {
	var out bytes.Buffer
	eng := factors.New()

	_, err := eng.RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), report.NewTextHandler(&out))
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
	assert.Empty(t, out.String(), "no timing line for a missing file")
}

func TestRunFile_ParseErrorWritesNothing(t *testing.T) {
	var out bytes.Buffer
	eng := factors.New()

	_, err := eng.RunFile(context.Background(), writeInput(t, "12\nabc\n15\n"), report.NewTextHandler(&out))

	var pe *domain.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Empty(t, out.String())
}

func TestRunFile_ElapsedMeasured(t *testing.T) {
	var out bytes.Buffer
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	clock := func() time.Time {
		calls++
		// Every call advances one millisecond.
		return t0.Add(time.Duration(calls) * time.Millisecond)
	}
	eng := factors.New(factors.WithClock(clock))

	sum, err := eng.RunFile(context.Background(), writeInput(t, "9\n"), report.NewTextHandler(&out))
	require.NoError(t, err)
	assert.Greater(t, sum.Elapsed, time.Duration(0))
	assert.Contains(t, out.String(), "9=3*3\nTime taken: 0.00")
}

func TestFactorize_UsesCache(t *testing.T) {
	cache := memory.NewCache()
	ctx := context.Background()
	var cachedEvents int
	eng := factors.New(
		factors.WithCache(cache),
		factors.WithHooks(domain.Hooks{
			OnResult: func(_ context.Context, e *domain.ResultEvent) {
				if e.Cached {
					cachedEvents++
				}
			},
		}),
	)

	first, err := eng.Factorize(ctx, 91)
	require.NoError(t, err)
	assert.Equal(t, domain.Found(91, 7, 13), first)
	stored, err := cache.Get(ctx, 91)
	require.NoError(t, err)
	assert.Equal(t, first, stored)

	second, err := eng.Factorize(ctx, 91)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cachedEvents)
}

func TestFactorize_Negative(t *testing.T) {
	_, err := factors.New().Factorize(context.Background(), -9)
	assert.ErrorIs(t, err, domain.ErrNegativeNumber)
}

type failingCache struct{}

func (failingCache) Get(context.Context, int64) (domain.Result, error) {
	return domain.Result{}, errors.New("connection refused")
}
func (failingCache) Put(context.Context, domain.Result) error {
	return errors.New("connection refused")
}
func (failingCache) Delete(context.Context, int64) error { return nil }

func TestFactorize_CacheFailureFallsBack(t *testing.T) {
	eng := factors.New(factors.WithCache(failingCache{}))

	r, err := eng.Factorize(context.Background(), 15)
	require.NoError(t, err)
	assert.Equal(t, domain.Found(15, 3, 5), r)
}

func TestProcess_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := factors.New().Process(ctx, []int64{4, 6}, report.NewTextHandler(&out))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestRunFile_Hooks(t *testing.T) {
	var results int
	var run *domain.RunEvent
	eng := factors.New(factors.WithHooks(domain.Hooks{
		OnResult:      func(_ context.Context, _ *domain.ResultEvent) { results++ },
		OnRunComplete: func(_ context.Context, e *domain.RunEvent) { run = e },
	}))

	path := writeInput(t, "12\n13\n15\n")
	_, err := eng.RunFile(context.Background(), path, report.NewTextHandler(&bytes.Buffer{}))
	require.NoError(t, err)

	assert.Equal(t, 3, results)
	require.NotNil(t, run)
	assert.Equal(t, path, run.Source)
	assert.Equal(t, 3, run.Numbers)
	assert.Equal(t, 2, run.Found)
}
