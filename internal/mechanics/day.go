// Package mechanics implements the game's daily deterministic systems:
// luck, dish of the day, weather, night events, the traveling cart,
// geode contents, and mine floor attributes. Every function here takes
// an explicit seed and day and returns a pure result; none retains state
// between calls.
package mechanics

import "fmt"

// Season identifies one of the four 28-day seasons in a game year.
type Season int

const (
	Spring Season = iota
	Summer
	Fall
	Winter
)

func (s Season) String() string {
	switch s {
	case Spring:
		return "Spring"
	case Summer:
		return "Summer"
	case Fall:
		return "Fall"
	case Winter:
		return "Winter"
	default:
		return "Unknown"
	}
}

const daysPerSeason = 28
const seasonsPerYear = 4
const daysPerYear = daysPerSeason * seasonsPerYear

var weekdayNames = [8]string{"", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// SeasonOf returns the season a given in-game day (1-indexed, day 1 is
// spring 1 of year 1) falls in.
func SeasonOf(day int) Season {
	return Season(((day - 1) / daysPerSeason) % seasonsPerYear)
}

// YearOf returns the 1-indexed game year a day falls in.
func YearOf(day int) int {
	return (day-1)/daysPerYear + 1
}

// DayOfSeason returns the 1-indexed day within the current season (1-28).
func DayOfSeason(day int) int {
	return (day-1)%daysPerSeason + 1
}

// DayOfYear returns the 1-indexed day within the current year (1-112).
func DayOfYear(day int) int {
	return (day-1)%daysPerYear + 1
}

// DayOfWeek returns 1-7 for Monday through Sunday. Friday is 5, Sunday is 7.
func DayOfWeek(day int) int {
	return (day-1)%7 + 1
}

// IsCartDay reports whether the traveling cart visits on this day: the
// vendor appears Friday and Sunday.
func IsCartDay(day int) bool {
	dow := DayOfWeek(day)
	return dow == 5 || dow == 7
}

// GetDayInfo renders a human-readable summary like "Mon, Spring 1, Year 1".
func GetDayInfo(day int) string {
	return fmt.Sprintf("%s, %s %d, Year %d", weekdayNames[DayOfWeek(day)], SeasonOf(day), DayOfSeason(day), YearOf(day))
}
