package generator

import "math/rand"

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed int64 = 1337

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed with
// a SplitMix64 finalizer, so neighbouring stream ids give uncorrelated streams.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Stream returns a generator for substream `stream` of `seed`.
// Options are applied first; the derived seed always wins over WithSeed/WithRand.
func Stream(seed int64, stream uint64, opts ...Option) *Generator {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithSeed(DeriveSeed(seed, stream)))

	return New(all...)
}
