package ports

import (
	"context"

	"github.com/aretw0/factors/pkg/domain"
)

// ResultCache stores factorization results so repeated numbers skip trial division.
type ResultCache interface {
	// Get returns the cached result for n.
	// Returns domain.ErrCacheMiss if nothing is stored for n.
	Get(ctx context.Context, n int64) (domain.Result, error)

	// Put stores the result under r.N.
	Put(ctx context.Context, r domain.Result) error

	// Delete removes the result for n. Deleting a missing entry is not an error.
	Delete(ctx context.Context, n int64) error
}
