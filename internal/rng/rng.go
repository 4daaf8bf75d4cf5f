// Package rng reimplements the subtractive pseudo-random generator the
// game's runtime uses for every deterministic mechanic. Two RNGs built
// from the same seed produce identical draw sequences forever; the
// generator carries no other state and never escapes the stack of the
// mechanic that constructed it.
package rng

const (
	maxInt = 0x7FFFFFFF // 2147483647
	minInt = -1 << 31   // -2147483648
	mseed  = 161803398
)

// RNG is the 56-slot subtractive generator. The zero value is not usable;
// construct one with New.
type RNG struct {
	table  [56]int32
	iNext  int
	iNextP int
}

// New constructs an RNG from a signed 32-bit seed, running the same
// initialization and 4-pass shuffle the reference runtime performs.
func New(seed int32) *RNG {
	r := &RNG{}
	r.init(seed)
	return r
}

func (r *RNG) init(seed int32) {
	subtraction := seed
	if seed == minInt {
		subtraction = maxInt
	} else if subtraction < 0 {
		subtraction = -subtraction
	}

	mj := int32(mseed - subtraction)
	r.table[55] = mj

	mk := int32(1)
	for i := 1; i <= 54; i++ {
		ii := (21 * i) % 55
		r.table[ii] = mk
		mk = mj - mk
		if mk < 0 {
			mk += maxInt
		}
		mj = r.table[ii]
	}

	for k := 0; k < 4; k++ {
		for i := 1; i <= 55; i++ {
			idx := 1 + (i+30)%55
			a := r.table[i] - r.table[idx]
			if a < 0 {
				a += maxInt
			}
			r.table[i] = a
		}
	}

	r.iNext = 0
	r.iNextP = 21
}

func (r *RNG) advance() int32 {
	r.iNext++
	if r.iNext == 56 {
		r.iNext = 1
	}
	r.iNextP++
	if r.iNextP == 56 {
		r.iNextP = 1
	}

	v := r.table[r.iNext] - r.table[r.iNextP]
	if v == maxInt {
		v--
	}
	if v < 0 {
		v += maxInt
	}
	r.table[r.iNext] = v
	return v
}

// Sample returns a float64 in [0, 1). This is the idiom the game uses for
// probability tests and is what NextDouble delegates to.
func (r *RNG) Sample() float64 {
	return float64(r.advance()) * (1.0 / float64(maxInt))
}

// NextDouble is an alias for Sample kept for call-site clarity where the
// game itself calls Random.NextDouble().
func (r *RNG) NextDouble() float64 {
	return r.Sample()
}

// Next returns an int32 in [0, maxInt).
func (r *RNG) Next() int32 {
	return int32(r.Sample() * float64(maxInt))
}

// NextIn returns an int32 in [lo, hi). hi is exclusive; callers passing
// lo=2, hi=790 mean rolls 2..789.
func (r *RNG) NextIn(lo, hi int32) int32 {
	return lo + int32(r.Sample()*float64(hi-lo))
}

// NextN draws n doubles and discards them, advancing the generator by n
// draws without allocating a slice for the results.
func (r *RNG) NextN(n int) {
	for i := 0; i < n; i++ {
		r.advance()
	}
}

// Lite is the constructor for call sites that only ever draw the first
// eight values. It shares the full construction of New, so its outputs
// equal New's for every draw, not only the first eight. No mechanic in
// this module calls it; they all use New.
func Lite(seed int32) *RNG {
	return New(seed)
}
