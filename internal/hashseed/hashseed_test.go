package hashseed

import "testing"

func TestHashSeedDeterministic(t *testing.T) {
	a := HashSeed(1, 2, 3, 4, 5)
	b := HashSeed(1, 2, 3, 4, 5)
	if a != b {
		t.Fatalf("HashSeed not deterministic: %d != %d", a, b)
	}
}

func TestHashSeedDiffersOnComponentChange(t *testing.T) {
	a := HashSeed(1, 2, 3, 4, 5)
	b := HashSeed(1, 2, 3, 4, 6)
	if a == b {
		t.Fatalf("expected different hashes for different inputs, both %d", a)
	}
}

// TestHashSeedFixedPoints pins HashSeed to XXH32's known output for a
// handful of tuples: the result is a raw two's-complement reinterpretation
// of the hash, so it is negative whenever the high bit is set.
func TestHashSeedFixedPoints(t *testing.T) {
	intMax32 := int32(intMax)
	cases := []struct {
		a, b, c, d, e int32
		want          int32
	}{
		{0, 0, 0, 0, 0, 1333457339},
		{1, 2, 3, 4, 5, 100340316},
		{-1, -2, -3, -4, -5, -795066798},
		{intMax32, intMax32, intMax32, intMax32, intMax32, 1333457339},
	}
	for _, c := range cases {
		got := HashSeed(c.a, c.b, c.c, c.d, c.e)
		if got != c.want {
			t.Errorf("HashSeed(%d,%d,%d,%d,%d) = %d, want %d", c.a, c.b, c.c, c.d, c.e, got, c.want)
		}
	}
}

func TestHashSeedCanBeNegative(t *testing.T) {
	found := false
	for seed := int32(0); seed < 4096; seed++ {
		if HashSeed(seed, seed, seed, seed, seed) < 0 {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected at least one negative HashSeed result over a small sample; output should not be forced non-negative")
	}
}

func TestNormalizeWrapsNegative(t *testing.T) {
	if normalize(-1) != intMax-1 {
		t.Fatalf("normalize(-1) = %d, want %d", normalize(-1), intMax-1)
	}
}
