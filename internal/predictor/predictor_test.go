package predictor

import (
	"testing"

	"github.com/MJE43/stardew-seed-oracle/internal/version"
)

func TestPredictDayDeterministic(t *testing.T) {
	a := PredictDay(12345, 1, version.V1_5)
	b := PredictDay(12345, 1, version.V1_5)
	if a != b {
		t.Fatalf("PredictDay not deterministic: %+v != %+v", a, b)
	}
}

func TestPredictDayCartOnlyOnCartDays(t *testing.T) {
	if p := PredictDay(12345, 1, version.V1_6); p.Cart != nil {
		t.Error("expected nil cart on day 1")
	}
	if p := PredictDay(12345, 5, version.V1_6); p.Cart == nil {
		t.Error("expected a cart on day 5")
	}
}

func TestPredictCartRangeDay5And7(t *testing.T) {
	days := PredictCartRange(12345, 5, 7, version.V1_6)
	if len(days) != 2 {
		t.Fatalf("expected exactly 2 cart days in [5,7], got %d", len(days))
	}
	if days[0].Day != 5 || days[1].Day != 7 {
		t.Errorf("expected days 5 and 7, got %d and %d", days[0].Day, days[1].Day)
	}
	for _, cd := range days {
		seen := map[int32]bool{}
		for _, it := range cd.Items {
			if it.ItemID == 0 {
				continue
			}
			if seen[it.ItemID] {
				t.Errorf("day %d: duplicate item id %d", cd.Day, it.ItemID)
			}
			seen[it.ItemID] = true
		}
	}
}

func TestPredictLuckRangeLength(t *testing.T) {
	got := PredictLuckRange(12345, 1, 10)
	if len(got) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(got))
	}
}

func TestFindMonsterFloorsSubsetOfInfested(t *testing.T) {
	floors := FindMonsterFloors(12345, 5, 1, 120, version.V1_6)
	for _, f := range floors {
		m := f % 40
		if !(m >= 6 && m <= 29 && m != 19) {
			t.Errorf("floor %d not in the infested range", f)
		}
	}
}
