package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around a math/rand/v2 PCG stream. PCG
// carries 128 bits of state, which is exactly the two 64-bit words the board
// draws from its entropy source at startup.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG from a single 64-bit seed.
func NewRNG(seed int64) *RNG {
	return NewRNG128(uint64(seed), 0)
}

// NewRNG128 creates an RNG from a 128-bit seed split into high and low words.
func NewRNG128(hi, lo uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(hi, lo))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Uint64 returns a random 64-bit value.
func (r *RNG) Uint64() uint64 {
	return r.r.Uint64()
}

// FillBinary fills the buffer with 0/1 values using the RNG.
func FillBinary(r *rand.Rand, buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.IntN(2))
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
