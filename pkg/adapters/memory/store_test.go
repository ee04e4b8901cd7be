package memory_test

import (
	"testing"

	"github.com/aretw0/factors/pkg/adapters/memory"
	"github.com/aretw0/factors/pkg/ports"
)

func TestMemoryCache_Contract(t *testing.T) {
	ports.RunResultCacheContract(t, memory.NewCache())
}
