package render

import "hash/fnv"

// seedFallback replaces a zero xorshift seed, which would lock the
// generator at zero forever.
const seedFallback = 0x9E3779B9

// PatternBits turns a seed string into exactly n booleans, fully determined
// by the input: the same seed always yields the same sequence. A 32-bit
// FNV-1a hash of the seed drives a 32-bit xorshift generator, one boolean per
// step as value%3 == 0 (roughly a third of cells on). Cosmetic only; no
// uniformity or cryptographic guarantee.
func PatternBits(seed string, n int) []bool {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	x := h.Sum32()
	if x == 0 {
		x = seedFallback
	}

	bits := make([]bool, n)
	for i := range bits {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		bits[i] = x%3 == 0
	}
	return bits
}
