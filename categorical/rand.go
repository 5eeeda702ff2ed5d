package categorical

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// newRand builds a per-instance PRNG seeded from the operating system's
// entropy source. Every Categorical owns one rather than drawing from a
// shared process-wide generator, so concurrently constructed instances
// never race on RNG state.
func newRand() *rand.Rand {
	var seed [32]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		panic("categorical: failed to seed RNG: " + err.Error())
	}
	s1 := binary.LittleEndian.Uint64(seed[0:8])
	s2 := binary.LittleEndian.Uint64(seed[8:16])
	return rand.New(rand.NewPCG(s1, s2))
}
