// Package version models the five game-version milestones that change
// daily mechanic behavior. Versions compare by dotted-integer ordering,
// not by string, so "1.5.3" sorts between "1.5" and "1.6".
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is one of the five recognized milestones.
type Version struct {
	major, minor, patch int
}

var (
	V1_3  = Version{1, 3, 0}
	V1_4  = Version{1, 4, 0}
	V1_5  = Version{1, 5, 0}
	V1_53 = Version{1, 5, 3}
	V1_6  = Version{1, 6, 0}
)

// Parse converts a wire string like "1.5.3" into a Version. A missing
// patch component defaults to 0; a non-numeric component is an error.
func Parse(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, fmt.Errorf("version: invalid format %q", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("version: invalid component %q in %q", p, s)
		}
		nums[i] = n
	}
	return Version{nums[0], nums[1], nums[2]}, nil
}

// String renders the version back to its wire form, omitting a zero patch.
func (v Version) String() string {
	if v.patch == 0 {
		return fmt.Sprintf("%d.%d", v.major, v.minor)
	}
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

func (v Version) tuple() [3]int { return [3]int{v.major, v.minor, v.patch} }

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater
// than other.
func (v Version) Compare(other Version) int {
	a, b := v.tuple(), other.tuple()
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (v Version) Less(other Version) bool    { return v.Compare(other) < 0 }
func (v Version) AtLeast(other Version) bool { return v.Compare(other) >= 0 }
func (v Version) Before(other Version) bool  { return v.Compare(other) < 0 }
func (v Version) Equal(other Version) bool   { return v.Compare(other) == 0 }

// UsesHashSeeding reports whether this version seeds RNGs via HashSeed
// instead of plain additive seeding, for mechanics that branch on it.
func (v Version) UsesHashSeeding() bool { return v.AtLeast(V1_6) }

// HasGingerIsle reports whether the Ginger Island location exists yet,
// which adds extra RNG draws to several daily mechanics.
func (v Version) HasGingerIsle() bool { return v.AtLeast(V1_5) }

// HasNewCartSystem reports whether traveling cart stock is picked from the
// 1.4+ legal-item set instead of the legacy roll-to-id table.
func (v Version) HasNewCartSystem() bool { return v.AtLeast(V1_4) }

// HasPrimedNightEvents reports whether night event resolution uses the
// 1.6 hash-seeded scheme primed with ten discarded draws, in place of the
// additive-seeded tiers of earlier versions.
func (v Version) HasPrimedNightEvents() bool { return v.AtLeast(V1_6) }

// HasReversedGeodeCheck reports whether the mineral/ore branch order in
// geode resolution is inverted relative to pre-1.6 versions.
func (v Version) HasReversedGeodeCheck() bool { return v.AtLeast(V1_6) }

// HasGeodeWarmup reports whether geode resolution performs the initial
// warm-up draw loop before selecting an item.
func (v Version) HasGeodeWarmup() bool { return v.AtLeast(V1_4) }

// HasQiBeanCheck reports whether geode resolution has a chance to yield
// a Qi bean, introduced alongside the Ginger Island content.
func (v Version) HasQiBeanCheck() bool { return v.AtLeast(V1_5) }

// UsesMineLevelMultiplier reports whether mine floor RNGs are seeded via
// HashSeed with the floor level multiplied by 100, instead of additively.
func (v Version) UsesMineLevelMultiplier() bool { return v.AtLeast(V1_4) }

// NightEventTier returns which of the three night-event rule tiers this
// version falls into: 0 for <1.5, 1 for [1.5,1.5.3), 2 for >=1.5.3.
func (v Version) NightEventTier() int {
	switch {
	case v.Before(V1_5):
		return 0
	case v.Before(V1_53):
		return 1
	default:
		return 2
	}
}
