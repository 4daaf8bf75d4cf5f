package mechanics

import (
	"math"

	"github.com/MJE43/stardew-seed-oracle/internal/rng"
)

// rejectedDishIDs are draws from the dish roll range that the game's own
// object catalog treats as invalid entries and skips.
var rejectedDishIDs = map[int32]bool{
	346: true, 196: true, 216: true, 224: true, 206: true, 395: true, 217: true,
}

func dailyRNGSeed(seed int32, day int) int32 {
	return seed/100 + int32(day-1)*10 + 1
}

func drawDish(r *rng.RNG) int32 {
	for {
		id := r.NextIn(194, 240)
		if !rejectedDishIDs[id] {
			return id
		}
	}
}

// dailyState replays the shared luck/dish RNG prefix and returns every
// value it produces, since DailyLuck and DishOfDay draw from the same
// generator in the same order.
type dailyState struct {
	dishID  int32
	dishQty int32
	luck    float64
}

func computeDailyState(seed int32, day int) dailyState {
	r := rng.New(dailyRNGSeed(seed, day))

	extraDraws := 0
	if day != 1 {
		extraDraws = DayOfSeason(day - 1)
	}
	r.NextN(extraDraws)

	dishID := drawDish(r)

	bonus := int32(0)
	if r.NextDouble() < 0.08 {
		bonus = 10
	}
	qty := r.NextIn(1, 4+bonus)

	r.NextDouble() // object-constructor sample, discarded

	roll := r.NextIn(-100, 101)
	luck := math.Min(float64(roll)/1000.0, 0.1)

	return dailyState{dishID: dishID, dishQty: qty, luck: luck}
}

// DailyLuck returns the day's daily luck value, always in [-0.1, 0.1]:
// the roll is drawn from [-100, 100] and the result is capped at 0.1.
func DailyLuck(seed int32, day int) float64 {
	return computeDailyState(seed, day).luck
}

// Dish is the saloon dish of the day: an item id and its quantity.
type Dish struct {
	ID       int32
	Quantity int32
}

// DishOfDay returns the saloon's dish of the day for a given seed and day.
func DishOfDay(seed int32, day int) Dish {
	s := computeDailyState(seed, day)
	return Dish{ID: s.dishID, Quantity: s.dishQty}
}
