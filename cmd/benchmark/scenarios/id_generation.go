package scenarios

import (
	"github.com/moguls753/hashrng-benchmark/internal/benchmark"
	"github.com/moguls753/hashrng-benchmark/internal/benchmark/algorithms"
)

// IDGeneration times producing one 128-bit identifier (UUIDv4, UUIDv7, ULID)
// with entropy drawn from a freshly seeded generator.
func IDGeneration() benchmark.Group {
	return benchmark.Group{
		Name:      "id_generation",
		Operation: benchmark.OpIdentifier,
		Variants:  algorithms.Identifiers(),
		Samples:   1000,
	}
}

// Default is the full suite in report order.
func Default() []benchmark.Group {
	return []benchmark.Group{
		HashComparison(),
		FastHash(),
		U64Generation(),
		BytesGeneration(),
		IDGeneration(),
	}
}
