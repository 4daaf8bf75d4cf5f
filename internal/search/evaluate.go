package search

import (
	"strings"

	"github.com/MJE43/stardew-seed-oracle/internal/mechanics"
	"github.com/MJE43/stardew-seed-oracle/internal/version"
)

// Evaluate walks the filter tree for a single seed, short-circuiting AND
// on the first false child and OR on the first true child.
func Evaluate(seed int32, n *Node, v version.Version) bool {
	switch n.Logic {
	case LogicAnd:
		for _, c := range n.Conditions {
			if !Evaluate(seed, c, v) {
				return false
			}
		}
		return true
	case LogicOr:
		for _, c := range n.Conditions {
			if Evaluate(seed, c, v) {
				return true
			}
		}
		return false
	default:
		return evaluateCondition(seed, n, v)
	}
}

func evaluateCondition(seed int32, n *Node, v version.Version) bool {
	switch n.Type {
	case CondDailyLuck:
		return anyDayInRange(n.DayStart, n.DayEnd, func(day int) bool {
			luck := mechanics.DailyLuck(seed, day)
			return luck >= n.MinLuck && luck <= n.MaxLuck
		})
	case CondDishOfDay:
		return anyDayInRange(n.DayStart, n.DayEnd, func(day int) bool {
			return mechanics.DishOfDay(seed, day).ID == n.DishID
		})
	case CondWeather:
		target, isAny := parseWeather(n.WeatherType)
		return anyDayInRange(n.DayStart, n.DayEnd, func(day int) bool {
			w := mechanics.PredictWeather(seed, day, mechanics.WeatherSunny, false, v)
			if isAny {
				return w != mechanics.WeatherSunny
			}
			return w == target
		})
	case CondNightEvent:
		target, isAny := parseNightEvent(n.EventType)
		return anyDayInRange(n.DayStart, n.DayEnd, func(day int) bool {
			e := mechanics.PredictNightEvent(seed, day, v)
			if isAny {
				return e != mechanics.NightEventNone
			}
			return e == target
		})
	case CondCartItem:
		return anyDayInRange(n.DayStart, n.DayEnd, func(day int) bool {
			if !mechanics.IsCartDay(day) {
				return false
			}
			items, ok := mechanics.PredictCart(seed, day, v)
			if !ok {
				return false
			}
			for _, it := range items {
				if it.ItemID == n.ItemID && (n.MaxPrice == nil || it.Price <= *n.MaxPrice) {
					return true
				}
			}
			return false
		})
	case CondGeode:
		gt := mechanics.ParseGeodeType(n.GeodeType)
		result := mechanics.PredictGeode(seed, n.GeodeNumber, n.PlayerID, n.DeepestMineLevel, gt, v)
		for _, target := range n.TargetItems {
			if target == result.ItemID {
				return true
			}
		}
		return false
	case CondMineFloor:
		return anyDayInRange(n.DayStart, n.DayEnd, func(day int) bool {
			if n.NoMonsters && len(mechanics.FindMonsterFloors(seed, day, n.FloorStart, n.FloorEnd, v)) != 0 {
				return false
			}
			if n.NoDark && len(mechanics.FindDarkFloors(seed, day, n.FloorStart, n.FloorEnd, v)) != 0 {
				return false
			}
			if n.HasMushroom {
				lo := n.FloorStart
				if lo < 81 {
					lo = 81
				}
				if lo <= n.FloorEnd && len(mechanics.FindMushroomFloors(seed, day, lo, n.FloorEnd, v)) == 0 {
					return false
				}
			}
			return true
		})
	default:
		return false
	}
}

func anyDayInRange(lo, hi int, pred func(day int) bool) bool {
	if lo > hi {
		return false
	}
	for day := lo; day <= hi; day++ {
		if pred(day) {
			return true
		}
	}
	return false
}

func parseWeather(s string) (target mechanics.Weather, isAny bool) {
	switch strings.ToLower(s) {
	case "any":
		return 0, true
	case "rain":
		return mechanics.WeatherRain, false
	case "debris":
		return mechanics.WeatherDebris, false
	case "lightning":
		return mechanics.WeatherLightning, false
	case "snow":
		return mechanics.WeatherSnow, false
	default:
		return mechanics.WeatherSunny, false
	}
}

func parseNightEvent(s string) (target mechanics.NightEvent, isAny bool) {
	switch strings.ToLower(s) {
	case "any":
		return 0, true
	case "fairy":
		return mechanics.NightEventFairy, false
	case "witch":
		return mechanics.NightEventWitch, false
	case "meteor":
		return mechanics.NightEventMeteor, false
	case "ufo":
		return mechanics.NightEventUFO, false
	case "owl":
		return mechanics.NightEventOwl, false
	case "earthquake":
		return mechanics.NightEventEarthquake, false
	default:
		return mechanics.NightEventNone, false
	}
}
