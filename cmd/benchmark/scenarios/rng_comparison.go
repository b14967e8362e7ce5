package scenarios

import (
	"github.com/moguls753/hashrng-benchmark/internal/benchmark"
	"github.com/moguls753/hashrng-benchmark/internal/benchmark/algorithms"
)

// FillSizes are the buffer sizes for the byte-fill group.
var FillSizes = []int{
	1 << 4,  // 16 B
	1 << 8,  // 256 B
	1 << 12, // 4 KiB
	1 << 16, // 64 KiB
	1 << 20, // 1 MiB
}

// U64Generation times drawing one 64-bit value from a freshly seeded
// generator. The call is cheap, so it gets many more samples.
func U64Generation() benchmark.Group {
	return benchmark.Group{
		Name:      "u64_generation",
		Operation: benchmark.OpUint64,
		Variants:  algorithms.Generators(),
		Samples:   10000,
	}
}

// BytesGeneration times filling a zeroed buffer from a freshly seeded generator.
func BytesGeneration() benchmark.Group {
	return benchmark.Group{
		Name:      "bytes_generation",
		Operation: benchmark.OpFill,
		Variants:  algorithms.Generators(),
		Sizes:     FillSizes,
		Samples:   100,
	}
}
