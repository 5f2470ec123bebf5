package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBinary fills the buffer with 0/1 values using the RNG.
func FillBinary(r *rand.Rand, buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.IntN(2))
	}
}

// BinaryRows returns a rows x cols matrix of random 0/1 values.
func (r *RNG) BinaryRows(rows, cols int) [][]uint8 {
	out := make([][]uint8, rows)
	for i := range out {
		out[i] = make([]uint8, cols)
		FillBinary(r.r, out[i])
	}
	return out
}
