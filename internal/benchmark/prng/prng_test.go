package prng

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMix64ReferenceOutput(t *testing.T) {
	sm := NewSplitMix64(0)
	assert.Equal(t, uint64(0xe220a8397b1dcdaf), sm.Uint64())
	assert.Equal(t, uint64(0x6e789e6aa1b965f4), sm.Uint64())
}

func TestXoshiroReferenceOutput(t *testing.T) {
	pp := &Xoshiro256PlusPlus{s: xoshiroState{1, 2, 3, 4}}
	for _, want := range []uint64{41943041, 58720359, 3588806011781223, 3591011842654386} {
		assert.Equal(t, want, pp.Uint64())
	}

	ss := &Xoshiro256StarStar{s: xoshiroState{1, 2, 3, 4}}
	for _, want := range []uint64{11520, 0, 1509978240, 1215971899390074240} {
		assert.Equal(t, want, ss.Uint64())
	}
}

func TestPCG64MCGReferenceOutput(t *testing.T) {
	p := &PCG64MCG{lo: 43}
	for _, want := range []uint64{0x63b4a3a813ce700a, 0x382954200617ab24, 0xa7fd85ae3fe950ce, 0xd715286aa2887737} {
		assert.Equal(t, want, p.Uint64())
	}
}

func TestPCG64MCGStateStaysOdd(t *testing.T) {
	for seed := uint64(0); seed < 64; seed++ {
		p := NewPCG64MCG(seed)
		assert.Equal(t, uint64(1), p.lo&1, "seed %d", seed)
		p.Uint64()
		assert.Equal(t, uint64(1), p.lo&1, "seed %d after one step", seed)
	}
}

var constructors = map[string]func(uint64) Stream{
	"xoshiro256plusplus": func(seed uint64) Stream { return NewXoshiro256PlusPlus(seed) },
	"xoshiro256starstar": func(seed uint64) Stream { return NewXoshiro256StarStar(seed) },
	"pcg64":              NewPCG64,
	"pcg64mcg":           func(seed uint64) Stream { return NewPCG64MCG(seed) },
	"pcg64dxsm":          NewPCG64DXSM,
	"pcg32":              NewPCG32,
	"chacha8":            NewChaCha8,
	"chacha20":           NewChaCha20,
}

func TestFreshStreamsAreIdentical(t *testing.T) {
	for name, newStream := range constructors {
		t.Run(name, func(t *testing.T) {
			a, b := newStream(42), newStream(42)
			for i := 0; i < 8; i++ {
				assert.Equal(t, a.Uint64(), b.Uint64(), "draw %d", i)
			}

			bufA, bufB := make([]byte, 1000), make([]byte, 1000)
			newStream(42).Fill(bufA)
			newStream(42).Fill(bufB)
			assert.Equal(t, bufA, bufB)
			assert.NotEqual(t, make([]byte, 1000), bufA)
		})
	}
}

func TestSeedsDiverge(t *testing.T) {
	for name, newStream := range constructors {
		t.Run(name, func(t *testing.T) {
			assert.NotEqual(t, newStream(1).Uint64(), newStream(2).Uint64())
		})
	}
}

func TestFillUint64UsesLittleEndianWords(t *testing.T) {
	words := NewXoshiro256PlusPlus(7)
	buf := make([]byte, 20)
	NewXoshiro256PlusPlus(7).Fill(buf)

	assert.Equal(t, words.Uint64(), binary.LittleEndian.Uint64(buf[0:8]))
	assert.Equal(t, words.Uint64(), binary.LittleEndian.Uint64(buf[8:16]))

	var tail [8]byte
	binary.LittleEndian.PutUint64(tail[:], words.Uint64())
	assert.Equal(t, tail[:4], buf[16:20])
}

func TestFillEmptyBuffer(t *testing.T) {
	for name, newStream := range constructors {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() { newStream(42).Fill(nil) })
		})
	}
}

func TestReader(t *testing.T) {
	r := Reader(NewXoshiro256PlusPlus(3))
	buf := make([]byte, 33)
	n, err := io.ReadFull(r, buf)
	require.NoError(t, err)
	assert.Equal(t, 33, n)

	want := make([]byte, 33)
	NewXoshiro256PlusPlus(3).Fill(want)
	assert.Equal(t, want, buf)
}

func TestSeedBytes(t *testing.T) {
	a := SeedBytes(42, 32)
	assert.Len(t, a, 32)
	assert.Equal(t, a, SeedBytes(42, 32))
	assert.NotEqual(t, a, SeedBytes(43, 32))
}
