package dataset

import "math/rand"

// golden is the SplitMix64 increment, 2^64 divided by the golden ratio.
const golden = 0x9e3779b97f4a7c15

// mix64 is the SplitMix64 output function (Steele, Lea & Flood, 2014). It is
// a bijection on uint64.
func mix64(z uint64) uint64 {
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb

	return z ^ z>>31
}

// streamSeed returns the seed of stream under parent. The parent is mixed
// into a base state and each stream sits one golden step further along, so
// distinct streams of one parent never share a seed.
func streamSeed(parent int64, stream uint64) int64 {
	base := mix64(uint64(parent))

	return int64(mix64(base + (stream+1)*golden))
}

// streamRNG returns the RNG for stream under parent. The same (parent,
// stream) always yields the same sequence.
func streamRNG(parent int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(streamSeed(parent, stream)))
}
