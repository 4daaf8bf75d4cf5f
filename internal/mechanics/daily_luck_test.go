package mechanics

import "testing"

func TestDailyLuckBounded(t *testing.T) {
	for _, seed := range []int32{0, 1, 12345, -1, -638161535} {
		for day := 1; day <= 30; day++ {
			luck := DailyLuck(seed, day)
			if luck > 0.1 || luck < -0.1 {
				t.Errorf("DailyLuck(%d, %d) = %v out of expected range", seed, day, luck)
			}
		}
	}
}

func TestDailyLuckDeterministic(t *testing.T) {
	a := DailyLuck(12345, 1)
	b := DailyLuck(12345, 1)
	if a != b {
		t.Fatalf("DailyLuck not deterministic: %v != %v", a, b)
	}
}

func TestDishOfDayDeterministic(t *testing.T) {
	a := DishOfDay(12345, 1)
	b := DishOfDay(12345, 1)
	if a != b {
		t.Fatalf("DishOfDay not deterministic: %+v != %+v", a, b)
	}
}

func TestDishOfDayNotRejected(t *testing.T) {
	for _, seed := range []int32{0, 1, 12345, -1, -638161535, 42, 100} {
		for day := 1; day <= 20; day++ {
			d := DishOfDay(seed, day)
			if rejectedDishIDs[d.ID] {
				t.Errorf("DishOfDay(%d, %d).ID = %d, which is in the rejected set", seed, day, d.ID)
			}
			if d.ID < 194 || d.ID >= 240 {
				t.Errorf("DishOfDay(%d, %d).ID = %d out of [194,240)", seed, day, d.ID)
			}
		}
	}
}
