/*
Package observability turns engine lifecycle hooks into Prometheus metrics.

Metrics are registered on a caller-supplied registry so tests and embedded uses
do not collide with the global default registry.
*/
package observability
