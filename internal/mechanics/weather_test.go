package mechanics

import (
	"testing"

	"github.com/MJE43/stardew-seed-oracle/internal/version"
)

func TestPredictWeatherDeterministic(t *testing.T) {
	a := PredictWeather(12345, 5, WeatherSunny, false, version.V1_5)
	b := PredictWeather(12345, 5, WeatherSunny, false, version.V1_5)
	if a != b {
		t.Fatalf("PredictWeather not deterministic: %v != %v", a, b)
	}
}

func TestPredictWeatherWinterIsSnowOrSunny(t *testing.T) {
	// day 85 is day-of-season 1 of winter (season index 3): (85-1)/28 % 4 = 3
	for _, seed := range []int32{1, 12345, -1} {
		w := PredictWeather(seed, 85, WeatherSunny, false, version.V1_6)
		if w != WeatherSunny && w != WeatherSnow {
			t.Errorf("winter day 85 weather = %v, want sunny or snow", w)
		}
	}
}

func TestPredictWeatherVersionSensitive(t *testing.T) {
	// 1.5+ draws an extra Ginger Island sample, so results should sometimes
	// differ from a pre-1.5 version at the same seed/day.
	foundDiff := false
	for seed := int32(1); seed < 1000; seed++ {
		v14 := PredictWeather(seed, 50, WeatherSunny, false, version.V1_4)
		v15 := PredictWeather(seed, 50, WeatherSunny, false, version.V1_5)
		if v14 != v15 {
			foundDiff = true
			break
		}
	}
	if !foundDiff {
		t.Error("expected 1.4 and 1.5 to sometimes give different weather")
	}
}

func TestPredictWeatherDebrisTodayChangesConsumption(t *testing.T) {
	foundDiff := false
	for seed := int32(1); seed < 200; seed++ {
		sunny := PredictWeather(seed, 20, WeatherSunny, false, version.V1_6)
		afterDebris := PredictWeather(seed, 20, WeatherDebris, false, version.V1_6)
		if sunny != afterDebris {
			foundDiff = true
			break
		}
	}
	if !foundDiff {
		t.Error("expected debris weather today to change tomorrow's roll by consuming extra RNG samples")
	}
}
