package photonmap

import (
	"time"

	"pgregory.net/rand"
)

// randomVector samples each component independently and uniformly in [-s, s].
func randomVector(rng *rand.Rand, s Real) Vector3 {
	return Vector3{
		(2*rng.Float64() - 1) * s,
		(2*rng.Float64() - 1) * s,
		(2*rng.Float64() - 1) * s,
	}
}

// randomInDisk returns a uniform point inside the unit disk (rejection sampling).
func randomInDisk(rng *rand.Rand) (x, y Real) {
	for {
		x = 2*rng.Float64() - 1
		y = 2*rng.Float64() - 1
		if x*x+y*y <= 1 {
			return x, y
		}
	}
}

// newRNG gives worker wid its own generator. A zero seed means "seed from the clock".
func newRNG(seed uint64, wid int) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(seed, uint64(wid)*0x9e3779b97f4a7c15)
}
