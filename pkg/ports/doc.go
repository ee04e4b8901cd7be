/*
Package ports defines the driven ports (interfaces) of the factors engine.

These interfaces decouple the core logic from storage backends, so the engine can
run with no cache, an in-memory cache, or a shared Redis cache.

# Key Interfaces

  - ResultCache: stores factorization results keyed by number.
*/
package ports
