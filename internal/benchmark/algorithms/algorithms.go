// Package algorithms is the registry of algorithm variants under test.
// Tables are ordered; reports follow declaration order.
package algorithms

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"io"
	"time"

	"github.com/dchest/siphash"
	"github.com/google/uuid"
	sha256simd "github.com/minio/sha256-simd"
	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"

	"github.com/moguls753/hashrng-benchmark/internal/benchmark"
	"github.com/moguls753/hashrng-benchmark/internal/benchmark/prng"
)

// sipKey is the fixed SipHash key; keyed hashes are measured, not secured.
var sipKey = []byte("hashrng-benchmk!")

// ulidTime is the fixed timestamp stamped into generated ULIDs.
var ulidTime = ulid.Timestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

func digest(name string, newHash func() (hash.Hash, error)) benchmark.Variant {
	return benchmark.Variant{Name: name, Capability: benchmark.CapabilityDigest, NewHash: newHash}
}

func infallible(newHash func() hash.Hash) func() (hash.Hash, error) {
	return func() (hash.Hash, error) { return newHash(), nil }
}

func stream(name string, newStream func(seed uint64) prng.Stream) benchmark.Variant {
	return benchmark.Variant{Name: name, Capability: benchmark.CapabilityStream, NewStream: newStream}
}

func identifier(name string, newID func(entropy io.Reader) ([]byte, error)) benchmark.Variant {
	return benchmark.Variant{Name: name, Capability: benchmark.CapabilityIdentifier, NewID: newID}
}

// CryptoHashes are the cryptographic digest candidates.
func CryptoHashes() []benchmark.Variant {
	return []benchmark.Variant{
		digest("sha256", infallible(sha256.New)),
		digest("sha512", infallible(sha512.New)),
		digest("blake3", infallible(func() hash.Hash { return blake3.New() })),
		digest("blake2b-256", func() (hash.Hash, error) { return blake2b.New256(nil) }),
		digest("sha256-simd", infallible(sha256simd.New)),
	}
}

// FastHashes are non-cryptographic or keyed short-input hashes.
func FastHashes() []benchmark.Variant {
	return []benchmark.Variant{
		digest("xxh3-64", infallible(func() hash.Hash { return xxh3.New() })),
		digest("siphash-2-4", infallible(func() hash.Hash { return siphash.New(sipKey) })),
	}
}

// Generators are the seedable pseudorandom generators.
func Generators() []benchmark.Variant {
	return []benchmark.Variant{
		stream("xoshiro256plusplus", func(seed uint64) prng.Stream { return prng.NewXoshiro256PlusPlus(seed) }),
		stream("xoshiro256starstar", func(seed uint64) prng.Stream { return prng.NewXoshiro256StarStar(seed) }),
		stream("pcg64", prng.NewPCG64),
		stream("pcg64mcg", func(seed uint64) prng.Stream { return prng.NewPCG64MCG(seed) }),
		stream("pcg64dxsm", prng.NewPCG64DXSM),
		stream("pcg32", prng.NewPCG32),
		stream("chacha8", prng.NewChaCha8),
		stream("chacha20", prng.NewChaCha20),
	}
}

// Identifiers are the 128-bit identifier schemes.
func Identifiers() []benchmark.Variant {
	return []benchmark.Variant{
		identifier("uuid-v4", func(entropy io.Reader) ([]byte, error) {
			id, err := uuid.NewRandomFromReader(entropy)
			return id[:], err
		}),
		identifier("uuid-v7", func(entropy io.Reader) ([]byte, error) {
			id, err := uuid.NewV7FromReader(entropy)
			return id[:], err
		}),
		identifier("ulid", func(entropy io.Reader) ([]byte, error) {
			id, err := ulid.New(ulidTime, entropy)
			return id[:], err
		}),
	}
}

// All returns every registered variant, grouped by table.
func All() []benchmark.Variant {
	return lo.Flatten([][]benchmark.Variant{CryptoHashes(), FastHashes(), Generators(), Identifiers()})
}

// ByName resolves a variant of the given capability by name.
func ByName(capability benchmark.Capability, name string) (benchmark.Variant, error) {
	v, ok := lo.Find(All(), func(v benchmark.Variant) bool {
		return v.Capability == capability && v.Name == name
	})
	if !ok {
		return benchmark.Variant{}, benchmark.ConfigError("unknown %s variant %q", capability, name)
	}
	return v, nil
}

// Select resolves names in order.
func Select(capability benchmark.Capability, names ...string) ([]benchmark.Variant, error) {
	variants := make([]benchmark.Variant, 0, len(names))
	for _, name := range names {
		v, err := ByName(capability, name)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}
