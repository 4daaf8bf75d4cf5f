package parallel

import (
	"context"
	"sync"
	"testing"

	"github.com/MJE43/stardew-seed-oracle/internal/search"
	"github.com/MJE43/stardew-seed-oracle/internal/version"
)

func earthquakeFilter(t *testing.T) *search.Node {
	t.Helper()
	filter, err := search.ParseFilter([]byte(`{
		"logic": "and",
		"conditions": [
			{"logic": "condition", "type": "night_event", "day_start": 29, "day_end": 29, "event_type": "earthquake"}
		]
	}`))
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	return filter
}

func TestSearchRangeMatchesEverySeedAcrossWorkers(t *testing.T) {
	filter := earthquakeFilter(t)

	var mu sync.Mutex
	var matches []int32
	result := SearchRange(context.Background(), Request{
		Filter:  filter,
		SeedLo:  1,
		SeedHi:  1000,
		Version: version.V1_6,
		Workers: 4,
		OnMatch: func(seed int32) {
			mu.Lock()
			matches = append(matches, seed)
			mu.Unlock()
		},
	})

	if result.Checked != 1000 {
		t.Errorf("expected 1000 seeds checked, got %d", result.Checked)
	}
	if result.Found != 1000 {
		t.Errorf("expected every seed to match (day 29 is always an earthquake), got %d", result.Found)
	}
	if len(matches) != 1000 {
		t.Errorf("expected 1000 recorded matches, got %d", len(matches))
	}
}

func TestSearchRangeRespectsGlobalMaxResults(t *testing.T) {
	filter := earthquakeFilter(t)

	result := SearchRange(context.Background(), Request{
		Filter:     filter,
		SeedLo:     1,
		SeedHi:     10000,
		Version:    version.V1_6,
		Workers:    8,
		MaxResults: 25,
	})

	if !result.LimitReached {
		t.Error("expected LimitReached once the global cap is hit")
	}
	if result.Found < 25 {
		t.Errorf("expected at least 25 matches recorded before workers stopped, got %d", result.Found)
	}
}

func TestSearchRangeSingleWorkerMatchesKernelDirectly(t *testing.T) {
	filter := earthquakeFilter(t)

	kernelResult := search.SearchRange(search.Request{
		Filter:  filter,
		SeedLo:  1,
		SeedHi:  500,
		Version: version.V1_6,
	})

	parallelResult := SearchRange(context.Background(), Request{
		Filter:  filter,
		SeedLo:  1,
		SeedHi:  500,
		Version: version.V1_6,
		Workers: 1,
	})

	if parallelResult.Checked != kernelResult.Checked {
		t.Errorf("checked mismatch: kernel=%d parallel=%d", kernelResult.Checked, parallelResult.Checked)
	}
	if parallelResult.Found != kernelResult.Found {
		t.Errorf("found mismatch: kernel=%d parallel=%d", kernelResult.Found, parallelResult.Found)
	}
}
