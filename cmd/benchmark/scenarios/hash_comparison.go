package scenarios

import (
	"github.com/moguls753/hashrng-benchmark/internal/benchmark"
	"github.com/moguls753/hashrng-benchmark/internal/benchmark/algorithms"
)

// DigestSizes span cache-resident inputs up to memory-bandwidth-bound ones.
var DigestSizes = []int{
	1 << 4,  // 16 B
	1 << 8,  // 256 B
	1 << 12, // 4 KiB
	1 << 16, // 64 KiB
	1 << 20, // 1 MiB
	1 << 23, // 8 MiB
}

// HashComparison times the cryptographic hashes over every digest size.
//
// Each sample hashes a freshly generated buffer with a freshly constructed
// hasher, so no digest depends on an earlier one.
func HashComparison() benchmark.Group {
	return benchmark.Group{
		Name:      "hash_comparison",
		Operation: benchmark.OpDigest,
		Variants:  algorithms.CryptoHashes(),
		Sizes:     DigestSizes,
		Samples:   100,
	}
}

// FastHash times the non-cryptographic and keyed hashes over the same sizes.
func FastHash() benchmark.Group {
	return benchmark.Group{
		Name:      "fast_hash",
		Operation: benchmark.OpDigest,
		Variants:  algorithms.FastHashes(),
		Sizes:     DigestSizes,
		Samples:   100,
	}
}
