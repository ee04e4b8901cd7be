// Package factor splits a number into two factors by trial division.
package factor

import (
	"fmt"

	"github.com/aretw0/factors/pkg/domain"
)

// Factorize returns the smallest divisor i of n in [2, floor(sqrt(n))] together with n/i.
// Primes, 0 and 1 yield a result with Found == false. Negative n is rejected.
func Factorize(n int64) (domain.Result, error) {
	if n < 0 {
		return domain.Result{}, fmt.Errorf("factorize %d: %w", n, domain.ErrNegativeNumber)
	}

	// i <= n/i is i*i <= n without overflowing int64.
	for i := int64(2); i <= n/i; i++ {
		if n%i == 0 {
			return domain.Found(n, i, n/i), nil
		}
	}
	return domain.NotFound(n), nil
}
