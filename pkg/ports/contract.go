package ports

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/factors/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultCacheContract runs a suite of tests to verify that a ResultCache implementation
// adheres to the defined interface contract.
func RunResultCacheContract(t *testing.T, cache ResultCache) {
	ctx := context.Background()

	t.Run("Put and Get", func(t *testing.T) {
		want := domain.Found(91, 7, 13)
		require.NoError(t, cache.Put(ctx, want))

		got, err := cache.Get(ctx, 91)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Not Found Result Is Cached", func(t *testing.T) {
		want := domain.NotFound(97)
		require.NoError(t, cache.Put(ctx, want))

		got, err := cache.Get(ctx, 97)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Miss", func(t *testing.T) {
		_, err := cache.Get(ctx, 123456789)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, domain.Found(4, 2, 2)))
		require.NoError(t, cache.Delete(ctx, 4))

		_, err := cache.Get(ctx, 4)
		assert.ErrorIs(t, err, domain.ErrCacheMiss, "Get after Delete should return ErrCacheMiss")

		assert.NoError(t, cache.Delete(ctx, 4), "deleting twice should not fail")
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, domain.NotFound(6)))
		require.NoError(t, cache.Put(ctx, domain.Found(6, 2, 3)))

		got, err := cache.Get(ctx, 6)
		require.NoError(t, err)
		assert.Equal(t, domain.Found(6, 2, 3), got)
	})

	t.Run("Concurrent Access", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := int64(100); i < 120; i++ {
			wg.Add(1)
			go func(n int64) {
				defer wg.Done()
				_ = cache.Put(ctx, domain.NotFound(n))
				_, _ = cache.Get(ctx, n)
			}(i)
		}
		wg.Wait()

		for i := int64(100); i < 120; i++ {
			got, err := cache.Get(ctx, i)
			require.NoError(t, err)
			assert.Equal(t, i, got.N)
		}
	})
}
