// Package hashseed implements the game's HashSeed helper: later game
// versions derive RNG seeds by hashing several loose components together
// instead of summing them, to avoid collisions between unrelated draws
// that happen to add up to the same total.
package hashseed

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
)

const intMax = 0x7FFFFFFF

// HashSeed combines five components into a single int32 seed using XXH32
// over their little-endian byte representation, seed 0. Each component is
// reduced modulo intMax before hashing, matching the game's own
// normalization of arbitrarily large accumulated values. The hash itself
// is returned as a raw two's-complement reinterpretation, not reduced —
// it is negative roughly half the time.
func HashSeed(a, b, c, d, e int32) int32 {
	var buf [20]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(normalize(a)))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(normalize(b)))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(normalize(c)))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(normalize(d)))
	binary.LittleEndian.PutUint32(buf[16:20], uint32(normalize(e)))

	h := xxhash.Checksum32(buf[:])
	return int32(h)
}

func normalize(v int32) int32 {
	m := v % intMax
	if m < 0 {
		m += intMax
	}
	return m
}
