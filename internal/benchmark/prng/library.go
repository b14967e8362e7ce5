package prng

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/zeebo/pcg"
	"golang.org/x/crypto/chacha20"
	exprand "golang.org/x/exp/rand"
)

// NewPCG64DXSM returns the math/rand/v2 PCG generator (128-bit LCG, DXSM output).
func NewPCG64DXSM(seed uint64) Stream {
	sm := NewSplitMix64(seed)
	return FromSource(rand.NewPCG(sm.Uint64(), sm.Uint64()))
}

type pcg64 struct {
	src *exprand.PCGSource
	rng *exprand.Rand
}

// NewPCG64 returns the x/exp PCG XSL RR 128/64 generator.
func NewPCG64(seed uint64) Stream {
	src := &exprand.PCGSource{}
	src.Seed(seed)
	return &pcg64{src: src, rng: exprand.New(src)}
}

func (p *pcg64) Uint64() uint64 { return p.src.Uint64() }

func (p *pcg64) Fill(b []byte) { _, _ = p.rng.Read(b) }

type chaCha8 struct {
	c *rand.ChaCha8
}

// NewChaCha8 returns the math/rand/v2 ChaCha8 generator keyed from seed.
func NewChaCha8(seed uint64) Stream {
	var key [32]byte
	copy(key[:], SeedBytes(seed, len(key)))
	return chaCha8{c: rand.NewChaCha8(key)}
}

func (c chaCha8) Uint64() uint64 { return c.c.Uint64() }

func (c chaCha8) Fill(p []byte) { _, _ = c.c.Read(p) }

type chaCha20 struct {
	c *chacha20.Cipher
}

// NewChaCha20 returns a ChaCha20 keystream generator keyed from seed with a zero nonce.
func NewChaCha20(seed uint64) Stream {
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(SeedBytes(seed, chacha20.KeySize), nonce)
	if err != nil {
		// key and nonce lengths are fixed above
		panic(errors.Wrap(err, "chacha20 cipher"))
	}
	return chaCha20{c: c}
}

func (c chaCha20) Uint64() uint64 {
	var b [8]byte
	c.c.XORKeyStream(b[:], b[:])
	return binary.LittleEndian.Uint64(b[:])
}

func (c chaCha20) Fill(p []byte) {
	clear(p)
	c.c.XORKeyStream(p, p)
}

// NewPCG32 returns zeebo/pcg's 64-bit-state PCG, two 32-bit outputs per value.
func NewPCG32(seed uint64) Stream {
	p := pcg.New(seed)
	return FromSource(&p)
}
