// Package data produces the deterministic input buffers fed to digest cases.
package data

import "github.com/moguls753/hashrng-benchmark/internal/benchmark/prng"

// Seed is the fixed seed behind every generated buffer.
const Seed uint64 = 42

// Generate returns size pseudorandom bytes. The generator is re-seeded with
// Seed on every call, so the result depends only on size and a shorter buffer
// is a prefix of a longer one.
func Generate(size int) []byte {
	buf := make([]byte, size)
	prng.NewXoshiro256PlusPlus(Seed).Fill(buf)
	return buf
}
