package version

import "testing"

func TestParseAndString(t *testing.T) {
	cases := []struct {
		in   string
		want Version
	}{
		{"1.3", V1_3},
		{"1.4", V1_4},
		{"1.5", V1_5},
		{"1.5.3", V1_53},
		{"1.6", V1_6},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestOrdering(t *testing.T) {
	if !V1_5.Before(V1_53) {
		t.Error("1.5 should be before 1.5.3")
	}
	if !V1_53.Before(V1_6) {
		t.Error("1.5.3 should be before 1.6")
	}
	if !V1_53.AtLeast(V1_5) {
		t.Error("1.5.3 should be at least 1.5")
	}
	if V1_4.AtLeast(V1_5) {
		t.Error("1.4 should not be at least 1.5")
	}
}

func TestNightEventTier(t *testing.T) {
	cases := []struct {
		v    Version
		tier int
	}{
		{V1_3, 0}, {V1_4, 0}, {V1_5, 1}, {V1_53, 2}, {V1_6, 2},
	}
	for _, c := range cases {
		if got := c.v.NightEventTier(); got != c.tier {
			t.Errorf("%v.NightEventTier() = %d, want %d", c.v, got, c.tier)
		}
	}
}

func TestFeatureGates(t *testing.T) {
	if V1_3.UsesHashSeeding() {
		t.Error("1.3 should not use hash seeding")
	}
	if !V1_6.UsesHashSeeding() {
		t.Error("1.6 should use hash seeding")
	}
	if V1_4.HasGingerIsle() {
		t.Error("1.4 should not have ginger isle")
	}
	if !V1_5.HasGingerIsle() {
		t.Error("1.5 should have ginger isle")
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse("nope"); err == nil {
		t.Error("expected error for invalid version string")
	}
	if _, err := Parse("1"); err == nil {
		t.Error("expected error for too-short version string")
	}
}
