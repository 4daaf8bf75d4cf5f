package mechanics

import "testing"

func TestIsCartDay(t *testing.T) {
	cases := []struct {
		day  int
		want bool
	}{
		{5, true},
		{7, true},
		{1, false},
		{2, false},
		{12, true}, // day-of-week 5
	}
	for _, c := range cases {
		if got := IsCartDay(c.day); got != c.want {
			t.Errorf("IsCartDay(%d) = %v, want %v", c.day, got, c.want)
		}
	}
}

func TestGetDayInfo(t *testing.T) {
	cases := []struct {
		day  int
		want string
	}{
		{1, "Mon, Spring 1, Year 1"},
		{113, "Mon, Spring 1, Year 2"},
	}
	for _, c := range cases {
		if got := GetDayInfo(c.day); got != c.want {
			t.Errorf("GetDayInfo(%d) = %q, want %q", c.day, got, c.want)
		}
	}
}

func TestDayArithmetic(t *testing.T) {
	if SeasonOf(1) != Spring {
		t.Error("day 1 should be spring")
	}
	if SeasonOf(29) != Summer {
		t.Error("day 29 should be summer")
	}
	if YearOf(112) != 1 || YearOf(113) != 2 {
		t.Error("year boundary at day 112/113 incorrect")
	}
	if DayOfYear(113) != 1 {
		t.Errorf("DayOfYear(113) = %d, want 1", DayOfYear(113))
	}
}
