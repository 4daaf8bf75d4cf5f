package mechanics

import (
	"testing"

	"github.com/MJE43/stardew-seed-oracle/internal/version"
)

func TestNightEventDay29Earthquake(t *testing.T) {
	versions := []version.Version{version.V1_3, version.V1_4, version.V1_5, version.V1_53, version.V1_6}
	seeds := []int32{1, 42, 12345, -1, -638161535}
	for _, v := range versions {
		for _, s := range seeds {
			if got := PredictNightEvent(s, 29, v); got != NightEventEarthquake {
				t.Errorf("PredictNightEvent(%d, 29, %v) = %v, want earthquake", s, v, got)
			}
		}
	}
}

func TestNightEventDeterministic(t *testing.T) {
	a := PredictNightEvent(12345, 1, version.V1_5)
	b := PredictNightEvent(12345, 1, version.V1_5)
	if a != b {
		t.Fatalf("PredictNightEvent not deterministic: %v != %v", a, b)
	}
}
