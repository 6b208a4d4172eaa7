// Package walk - random streams for sentences and verses.
//
// A walk never reads a global or time-seeded source: every Sentence gets
// an explicit *rand.Rand. Verses reads one verse key from the base stream
// and gives sentence i the stream verseRNG(key, i), so the lines of a verse
// do not depend on which worker runs them or in what order.
//
// A *rand.Rand is not goroutine-safe; a sentence stream is never shared.
package walk

import "math/rand"

// defaultRNGSeed stands in for seed 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns the stream for seed; 0 selects defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// verseKey draws the key shared by every sentence of one Verses call.
func verseKey(base *rand.Rand) uint64 {
	if base == nil {
		return uint64(defaultRNGSeed)
	}
	return base.Uint64()
}

// verseRNG returns the stream of sentence i under key. Neighbouring indices
// are spread apart by a SplitMix64 step so their seeds share no low bits.
func verseRNG(key uint64, i int) *rand.Rand {
	z := key + uint64(i+1)*0x9e3779b97f4a7c15
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb
	return rand.New(rand.NewSource(int64(z ^ z>>31)))
}
