package mechanics

import (
	"github.com/MJE43/stardew-seed-oracle/internal/hashseed"
	"github.com/MJE43/stardew-seed-oracle/internal/rng"
	"github.com/MJE43/stardew-seed-oracle/internal/version"
)

// NightEvent is the tagged outcome of a night's scheduled event roll.
type NightEvent int

const (
	NightEventNone NightEvent = iota
	NightEventFairy
	NightEventWitch
	NightEventMeteor
	NightEventUFO
	NightEventOwl
	NightEventEarthquake
)

func (e NightEvent) String() string {
	switch e {
	case NightEventFairy:
		return "fairy"
	case NightEventWitch:
		return "witch"
	case NightEventMeteor:
		return "meteor"
	case NightEventUFO:
		return "ufo"
	case NightEventOwl:
		return "owl"
	case NightEventEarthquake:
		return "earthquake"
	default:
		return "none"
	}
}

// PredictNightEvent rolls the event scheduled for the night following day.
// The event is always for "tomorrow": ed = day + 1.
func PredictNightEvent(seed int32, day int, v version.Version) NightEvent {
	ed := day + 1
	if ed == 30 {
		return NightEventEarthquake
	}

	month := ((ed - 1) / 28) % 4
	year := (ed-1)/112 + 1

	if v.UsesHashSeeding() {
		return nightEventV16(seed, ed, month, year)
	}
	return nightEventLegacy(seed, ed, month, year, v)
}

func nightEventV16(seed int32, ed, month, year int) NightEvent {
	r := rng.New(hashseed.HashSeed(int32(ed), seed/2, 0, 0, 0))
	r.NextN(10)

	if r.NextDouble() < 0.01 && month < 3 {
		return NightEventFairy
	}
	if r.NextDouble() < 0.01 && ed > 20 {
		return NightEventWitch
	}
	if r.NextDouble() < 0.01 && ed > 5 {
		return NightEventMeteor
	}
	if r.NextDouble() < 0.005 {
		return NightEventOwl
	}
	if r.NextDouble() < 0.008 && year > 1 {
		return NightEventUFO
	}
	return NightEventNone
}

func nightEventLegacy(seed int32, ed, month, year int, v version.Version) NightEvent {
	r := rng.New(seed/2 + int32(ed))

	if r.NextDouble() < 0.01 && month < 3 {
		return NightEventFairy
	}
	if r.NextDouble() < 0.01 {
		return NightEventWitch
	}
	if r.NextDouble() < 0.01 {
		return NightEventMeteor
	}

	switch v.NightEventTier() {
	case 0: // < 1.5: ufo then owl, both at 0.01
		if r.NextDouble() < 0.01 && year > 1 {
			return NightEventUFO
		}
		if r.NextDouble() < 0.01 {
			return NightEventOwl
		}
	case 1: // [1.5, 1.5.3): ufo then owl, both at 0.008
		if r.NextDouble() < 0.008 && year > 1 {
			return NightEventUFO
		}
		if r.NextDouble() < 0.008 {
			return NightEventOwl
		}
	default: // >= 1.5.3: owl (0.005) then ufo (0.008)
		if r.NextDouble() < 0.005 {
			return NightEventOwl
		}
		if r.NextDouble() < 0.008 && year > 1 {
			return NightEventUFO
		}
	}
	return NightEventNone
}
