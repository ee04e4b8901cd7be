package domain

import "fmt"

// FactorPair holds two factors of a number with Small <= Large.
type FactorPair struct {
	Small int64 `json:"small"`
	Large int64 `json:"large"`
}

// Result is the outcome of factorizing N.
// When Found is false the number has no factorization by trial division and Pair is zero.
type Result struct {
	N     int64      `json:"n"`
	Pair  FactorPair `json:"pair"`
	Found bool       `json:"found"`
}

// NotFound returns the result for a number without a factor pair.
func NotFound(n int64) Result {
	return Result{N: n}
}

// Found returns the result for a number factorized as small*large.
func Found(n, small, large int64) Result {
	return Result{N: n, Pair: FactorPair{Small: small, Large: large}, Found: true}
}

// String renders the result as "n=i*j". Results without a pair render as an empty string.
func (r Result) String() string {
	if !r.Found {
		return ""
	}
	return fmt.Sprintf("%d=%d*%d", r.N, r.Pair.Small, r.Pair.Large)
}
