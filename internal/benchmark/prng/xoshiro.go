package prng

import "math/bits"

// SplitMix64 is used to expand 64-bit seeds into generator state.
type SplitMix64 struct {
	state uint64
}

func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

func (s *SplitMix64) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

type xoshiroState [4]uint64

func newXoshiroState(seed uint64) xoshiroState {
	sm := NewSplitMix64(seed)
	return xoshiroState{sm.Uint64(), sm.Uint64(), sm.Uint64(), sm.Uint64()}
}

func (s *xoshiroState) advance() {
	t := s[1] << 17
	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= t
	s[3] = bits.RotateLeft64(s[3], 45)
}

// Xoshiro256PlusPlus is xoshiro256++ 1.0.
type Xoshiro256PlusPlus struct {
	s xoshiroState
}

func NewXoshiro256PlusPlus(seed uint64) *Xoshiro256PlusPlus {
	return &Xoshiro256PlusPlus{s: newXoshiroState(seed)}
}

func (x *Xoshiro256PlusPlus) Uint64() uint64 {
	result := bits.RotateLeft64(x.s[0]+x.s[3], 23) + x.s[0]
	x.s.advance()
	return result
}

func (x *Xoshiro256PlusPlus) Fill(p []byte) { FillUint64(x, p) }

// Xoshiro256StarStar is xoshiro256** 1.0.
type Xoshiro256StarStar struct {
	s xoshiroState
}

func NewXoshiro256StarStar(seed uint64) *Xoshiro256StarStar {
	return &Xoshiro256StarStar{s: newXoshiroState(seed)}
}

func (x *Xoshiro256StarStar) Uint64() uint64 {
	result := bits.RotateLeft64(x.s[1]*5, 7) * 9
	x.s.advance()
	return result
}

func (x *Xoshiro256StarStar) Fill(p []byte) { FillUint64(x, p) }
