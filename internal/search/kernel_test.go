package search

import (
	"testing"

	"github.com/MJE43/stardew-seed-oracle/internal/version"
)

func earthquakeFilter(t *testing.T) *Node {
	t.Helper()
	doc := `{"logic":"and","conditions":[{"logic":"condition","type":"night_event","day_start":29,"day_end":29,"event_type":"earthquake"}]}`
	root, err := ParseFilter([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return root
}

func TestSearchRangeDay29EarthquakeMatchesEverySeed(t *testing.T) {
	filter := earthquakeFilter(t)
	var matches []int32
	result := SearchRange(Request{
		Filter:  filter,
		SeedLo:  1,
		SeedHi:  1000,
		Version: version.V1_6,
		OnMatch: func(seed int32) bool {
			matches = append(matches, seed)
			return true
		},
	})

	if result.State != StateExhausted {
		t.Fatalf("expected exhausted, got %v", result.State)
	}
	if len(matches) != 1000 {
		t.Fatalf("expected all 1000 seeds to match, got %d", len(matches))
	}
	if result.Found != 1000 || result.Checked != 1000 {
		t.Fatalf("unexpected counters: %+v", result)
	}
}

func TestSearchRangeRespectsMaxResults(t *testing.T) {
	filter := earthquakeFilter(t)
	var matches []int32
	result := SearchRange(Request{
		Filter:     filter,
		SeedLo:     1,
		SeedHi:     1000,
		MaxResults: 5,
		Version:    version.V1_6,
		OnMatch: func(seed int32) bool {
			matches = append(matches, seed)
			return true
		},
	})
	if result.State != StateLimitReached {
		t.Fatalf("expected limit_reached, got %v", result.State)
	}
	if len(matches) != 5 {
		t.Fatalf("expected 5 matches, got %d", len(matches))
	}
}

func TestSearchRangeCancellationViaOnMatch(t *testing.T) {
	filter := earthquakeFilter(t)
	count := 0
	result := SearchRange(Request{
		Filter:  filter,
		SeedLo:  1,
		SeedHi:  1000,
		Version: version.V1_6,
		OnMatch: func(seed int32) bool {
			count++
			return count < 3
		},
	})
	if result.State != StateCancelled {
		t.Fatalf("expected cancelled, got %v", result.State)
	}
	if count != 3 {
		t.Fatalf("expected exactly 3 match callbacks, got %d", count)
	}
}

func TestSearchRangeProgressCallback(t *testing.T) {
	filter := earthquakeFilter(t)
	var lastChecked uint64
	calls := 0
	SearchRange(Request{
		Filter:  filter,
		SeedLo:  1,
		SeedHi:  25000,
		Version: version.V1_6,
		OnProgress: func(checked, found uint64) bool {
			calls++
			lastChecked = checked
			return true
		},
		OnMatch: func(seed int32) bool { return true },
	})
	if calls < 2 {
		t.Fatalf("expected at least 2 progress callbacks over 25000 seeds, got %d", calls)
	}
	if lastChecked != 25000 {
		t.Fatalf("expected final checked count 25000, got %d", lastChecked)
	}
}

func TestSearchRangeInvertedBoundsIsExhaustedImmediately(t *testing.T) {
	filter := earthquakeFilter(t)
	result := SearchRange(Request{
		Filter:  filter,
		SeedLo:  100,
		SeedHi:  1,
		Version: version.V1_6,
		OnMatch: func(seed int32) bool {
			t.Fatalf("OnMatch should not be called for an inverted range")
			return true
		},
	})
	if result.State != StateExhausted || result.Checked != 0 || result.Found != 0 {
		t.Fatalf("expected an immediate empty exhausted result, got %+v", result)
	}
}
