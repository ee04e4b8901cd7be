package memory

import (
	"context"
	"sync"

	"github.com/aretw0/factors/pkg/domain"
)

// Cache implements ports.ResultCache in memory.
// Safe for concurrent use.
type Cache struct {
	data map[int64]domain.Result
	mu   sync.RWMutex
}

// NewCache creates a new in-memory cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[int64]domain.Result),
	}
}

// Get returns the stored result for n.
func (c *Cache) Get(ctx context.Context, n int64) (domain.Result, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.data[n]
	if !ok {
		return domain.Result{}, domain.ErrCacheMiss
	}
	return r, nil
}

// Put stores the result under r.N.
func (c *Cache) Put(ctx context.Context, r domain.Result) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[r.N] = r
	return nil
}

// Delete removes the result for n.
func (c *Cache) Delete(ctx context.Context, n int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, n)
	return nil
}
