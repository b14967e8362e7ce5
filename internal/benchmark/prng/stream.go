// Package prng holds the seedable generators benchmarked by the stream groups
// and the adapters that give library generators one call contract.
package prng

import (
	"encoding/binary"
	"io"
)

// Stream is the stream capability: one 64-bit value per call, or an
// arbitrarily sized buffer filled with pseudorandom bytes.
type Stream interface {
	Uint64() uint64
	Fill(p []byte)
}

// Uint64Source is the minimal generator contract shared by most libraries.
type Uint64Source interface {
	Uint64() uint64
}

// FillUint64 fills p with little-endian words drawn from src. A partial
// trailing word consumes one full draw.
func FillUint64(src Uint64Source, p []byte) {
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, src.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], src.Uint64())
		copy(p, tail[:])
	}
}

// sourceStream adapts a Uint64Source that has no native bulk fill.
type sourceStream struct {
	src Uint64Source
}

// FromSource wraps a Uint64Source as a Stream.
func FromSource(src Uint64Source) Stream {
	return sourceStream{src: src}
}

func (s sourceStream) Uint64() uint64 { return s.src.Uint64() }

func (s sourceStream) Fill(p []byte) { FillUint64(s.src, p) }

type streamReader struct {
	s Stream
}

// Reader exposes a Stream as an io.Reader that never fails.
func Reader(s Stream) io.Reader {
	return streamReader{s: s}
}

func (r streamReader) Read(p []byte) (int, error) {
	r.s.Fill(p)
	return len(p), nil
}

// SeedBytes expands seed into n bytes using SplitMix64, the usual way to turn
// a 64-bit seed into wider key material.
func SeedBytes(seed uint64, n int) []byte {
	sm := NewSplitMix64(seed)
	out := make([]byte, n)
	FillUint64(sm, out)
	return out
}
