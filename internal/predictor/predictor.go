// Package predictor exposes the public, range-style prediction and
// search operations over the mechanics and search-kernel layers: the
// shape callers (the CLI, the HTTP API) actually invoke.
package predictor

import (
	"github.com/MJE43/stardew-seed-oracle/internal/mechanics"
	"github.com/MJE43/stardew-seed-oracle/internal/search"
	"github.com/MJE43/stardew-seed-oracle/internal/version"
)

// DayPrediction is the bundle of everything a single day yields.
type DayPrediction struct {
	Day        int
	Luck       float64
	Dish       mechanics.Dish
	Weather    mechanics.Weather
	NightEvent mechanics.NightEvent
	Cart       *[10]mechanics.CartItem
}

// PredictDay computes every mechanic for a single (seed, day, version).
// Cart is nil on non-cart days. The weather roll assumes yesterday was
// sunny and the save has no multiplayer farmhands, the same simplifying
// assumption a standalone single-day lookup has to make; use
// PredictWeatherRange for a sequence that tracks the prior day's actual
// weather.
func PredictDay(seed int32, day int, v version.Version) DayPrediction {
	pred := DayPrediction{
		Day:        day,
		Luck:       mechanics.DailyLuck(seed, day),
		Dish:       mechanics.DishOfDay(seed, day),
		Weather:    mechanics.PredictWeather(seed, day, mechanics.WeatherSunny, false, v),
		NightEvent: mechanics.PredictNightEvent(seed, day, v),
	}
	if items, ok := mechanics.PredictCart(seed, day, v); ok {
		pred.Cart = &items
	}
	return pred
}

// LuckDay pairs a day with its luck value.
type LuckDay struct {
	Day  int
	Luck float64
}

// PredictLuckRange returns luck for every day in [dayLo, dayHi].
func PredictLuckRange(seed int32, dayLo, dayHi int) []LuckDay {
	if dayLo > dayHi {
		return nil
	}
	out := make([]LuckDay, 0, dayHi-dayLo+1)
	for d := dayLo; d <= dayHi; d++ {
		out = append(out, LuckDay{Day: d, Luck: mechanics.DailyLuck(seed, d)})
	}
	return out
}

// DishDay pairs a day with its dish.
type DishDay struct {
	Day  int
	Dish mechanics.Dish
}

// PredictDishRange returns the dish of the day for every day in range.
func PredictDishRange(seed int32, dayLo, dayHi int) []DishDay {
	if dayLo > dayHi {
		return nil
	}
	out := make([]DishDay, 0, dayHi-dayLo+1)
	for d := dayLo; d <= dayHi; d++ {
		out = append(out, DishDay{Day: d, Dish: mechanics.DishOfDay(seed, d)})
	}
	return out
}

// WeatherDay pairs a day with its weather.
type WeatherDay struct {
	Day     int
	Weather mechanics.Weather
}

// PredictWeatherRange returns weather for every day in range. Each day's
// roll accounts for the debris-day extra RNG consumption triggered by
// the previous day actually resolving to debris, so a whole-range
// prediction stays consistent with a save that started the range with
// sunny weather the day before dayLo.
func PredictWeatherRange(seed int32, dayLo, dayHi int, hasFriends bool, v version.Version) []WeatherDay {
	if dayLo > dayHi {
		return nil
	}
	out := make([]WeatherDay, 0, dayHi-dayLo+1)
	weatherToday := mechanics.WeatherSunny
	for d := dayLo; d <= dayHi; d++ {
		w := mechanics.PredictWeather(seed, d, weatherToday, hasFriends, v)
		out = append(out, WeatherDay{Day: d, Weather: w})
		weatherToday = w
	}
	return out
}

// NightEventDay pairs a day with its scheduled event.
type NightEventDay struct {
	Day   int
	Event mechanics.NightEvent
}

// PredictNightEventsRange returns the scheduled event for every day in range.
func PredictNightEventsRange(seed int32, dayLo, dayHi int, v version.Version) []NightEventDay {
	if dayLo > dayHi {
		return nil
	}
	out := make([]NightEventDay, 0, dayHi-dayLo+1)
	for d := dayLo; d <= dayHi; d++ {
		out = append(out, NightEventDay{Day: d, Event: mechanics.PredictNightEvent(seed, d, v)})
	}
	return out
}

// CartDay pairs a cart day with its contents.
type CartDay struct {
	Day   int
	Items [10]mechanics.CartItem
}

// PredictCartRange returns cart contents for every cart day in range.
func PredictCartRange(seed int32, dayLo, dayHi int, v version.Version) []CartDay {
	if dayLo > dayHi {
		return nil
	}
	var out []CartDay
	for d := dayLo; d <= dayHi; d++ {
		if items, ok := mechanics.PredictCart(seed, d, v); ok {
			out = append(out, CartDay{Day: d, Items: items})
		}
	}
	return out
}

// PredictGeodes returns count consecutive geode results starting at index
// start (1-indexed). playerID is the cracking farmer's unique ID.
// deepestMineLevel gates the ore tier available to regular and frozen
// geodes.
func PredictGeodes(seed int32, start, count int, playerID int32, deepestMineLevel int32, gt mechanics.GeodeType, v version.Version) []mechanics.GeodeResult {
	return mechanics.PredictGeodes(seed, start, count, playerID, deepestMineLevel, gt, v)
}

// PredictMineFloors returns floor records for [floorLo, floorHi] on a day.
func PredictMineFloors(seed int32, day, floorLo, floorHi int, v version.Version) []mechanics.FloorRecord {
	return mechanics.PredictMineFloors(seed, day, floorLo, floorHi, v)
}

// FindMonsterFloors returns monster/slime floors in [floorLo, floorHi].
func FindMonsterFloors(seed int32, day, floorLo, floorHi int, v version.Version) []int {
	return mechanics.FindMonsterFloors(seed, day, floorLo, floorHi, v)
}

// FindDarkFloors returns dark floors in [floorLo, floorHi].
func FindDarkFloors(seed int32, day, floorLo, floorHi int, v version.Version) []int {
	return mechanics.FindDarkFloors(seed, day, floorLo, floorHi, v)
}

// FindMushroomFloors returns mushroom floors in [floorLo, floorHi].
func FindMushroomFloors(seed int32, day, floorLo, floorHi int, v version.Version) []int {
	return mechanics.FindMushroomFloors(seed, day, floorLo, floorHi, v)
}

// ReachableFloors returns the elevator stops in [floorLo, floorHi].
func ReachableFloors(floorLo, floorHi int) []int {
	return mechanics.ReachableFloors(floorLo, floorHi)
}

// FindItemInCart searches forward for the first cart appearance of an item.
func FindItemInCart(seed int32, itemID int32, maxDays int, v version.Version) (day int, price int32, found bool) {
	return mechanics.FindItemInCart(seed, itemID, maxDays, v)
}

// SearchRange runs the filter search kernel over a seed interval.
func SearchRange(req search.Request) search.Result {
	return search.SearchRange(req)
}
