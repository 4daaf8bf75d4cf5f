package mechanics

import (
	"github.com/MJE43/stardew-seed-oracle/internal/rng"
	"github.com/MJE43/stardew-seed-oracle/internal/version"
)

// Weather is the tagged next-day forecast. The value 4 is intentionally
// unused: the reference enum skips it between Lightning and Snow.
type Weather int

const (
	WeatherSunny     Weather = 0
	WeatherRain      Weather = 1
	WeatherDebris    Weather = 2
	WeatherLightning Weather = 3
	WeatherSnow      Weather = 5
)

func (w Weather) String() string {
	switch w {
	case WeatherRain:
		return "rain"
	case WeatherDebris:
		return "debris"
	case WeatherLightning:
		return "lightning"
	case WeatherSnow:
		return "snow"
	default:
		return "sunny"
	}
}

// PredictWeather predicts tomorrow's weather for the given seed and day.
// The weather roll shares the daily-luck RNG instance: it replays the
// dish/quantity/luck prefix exactly (without re-deriving those results)
// before drawing its own weather-specific values, since the game
// generates weather from the same generator invocation used for luck.
//
// weatherToday is the weather code the game rolled for the day before
// this prediction; a debris-weather today triggers an extra block of RNG
// consumption before tomorrow's roll. hasFriends reports whether the
// save has multiplayer farmhands, which draws one additional sample.
func PredictWeather(seed int32, day int, weatherToday Weather, hasFriends bool, v version.Version) Weather {
	r := rng.New(dailyRNGSeed(seed, day))

	extraDraws := 0
	if day != 1 {
		extraDraws = DayOfSeason(day - 1)
	}
	r.NextN(extraDraws)

	// Replay the dish/luck prefix in the exact shape computeDailyState uses,
	// discarding the values: dish pick, quantity-bonus probe, quantity draw,
	// object-constructor sample, luck roll.
	drawDish(r)
	bonus := int32(0)
	if r.NextDouble() < 0.08 {
		bonus = 10
	}
	r.NextIn(1, 4+bonus)
	r.NextDouble()
	r.NextIn(-100, 101)

	if hasFriends {
		r.NextDouble()
	}

	if v.HasGingerIsle() {
		r.NextDouble()
	}

	if weatherToday == WeatherDebris {
		num := r.NextIn(16, 65)
		for i := int32(0); i < num; i++ {
			r.NextDouble()
			r.NextDouble()
			r.NextDouble()
			r.NextDouble()
			r.NextDouble()
			r.NextDouble()
		}
	}

	season := SeasonOf(day)
	dayOfMonth := DayOfSeason(day)

	var chanceToRain float64
	switch season {
	case Summer:
		chanceToRain = float64(dayOfMonth)*(3.0/1000.0) + 0.12
	case Winter:
		chanceToRain = 0.63
	default:
		chanceToRain = 0.183
	}

	if r.NextDouble() < chanceToRain {
		switch {
		case season == Winter:
			return WeatherSnow
		case season == Summer && r.NextDouble() < 0.85:
			return WeatherLightning
		case season != Winter && r.NextDouble() < 0.25 && dayOfMonth > 2 && dayOfMonth < 28:
			return WeatherLightning
		default:
			return WeatherRain
		}
	}

	if day <= 2 {
		return WeatherSunny
	}
	if season == Spring && r.NextDouble() < 0.2 {
		return WeatherDebris
	}
	if season == Fall && r.NextDouble() < 0.6 {
		return WeatherDebris
	}
	return WeatherSunny
}
