package core

import "math/rand/v2"

// RNG is a seeded PCG source. Apple placement and the soak pilot each own
// one so a run replays exactly from its seed.
type RNG struct {
	src *rand.Rand
}

func NewRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

// IntN picks from [0, n); an empty range yields 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.src.IntN(n)
}
