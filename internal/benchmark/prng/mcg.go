package prng

import "math/bits"

// Multiplier of the 128-bit MCG, split into 64-bit halves.
const (
	mcgMulHi = 0x2360ed051fc65da4
	mcgMulLo = 0x4385df649fccf645
)

// PCG64MCG is PCG with a 128-bit multiplicative congruential state and the
// XSL-RR output function, returning 64 bits per step.
type PCG64MCG struct {
	hi, lo uint64
}

// NewPCG64MCG expands seed into 128 bits of state with SplitMix64. The low
// bit is forced to one; an MCG state must be odd.
func NewPCG64MCG(seed uint64) *PCG64MCG {
	sm := NewSplitMix64(seed)
	hi, lo := sm.Uint64(), sm.Uint64()
	return &PCG64MCG{hi: hi, lo: lo | 1}
}

func (p *PCG64MCG) Uint64() uint64 {
	hi, lo := bits.Mul64(p.lo, mcgMulLo)
	hi += p.hi*mcgMulLo + p.lo*mcgMulHi
	p.hi, p.lo = hi, lo

	return bits.RotateLeft64(hi^lo, -int(hi>>58))
}

func (p *PCG64MCG) Fill(b []byte) { FillUint64(p, b) }
