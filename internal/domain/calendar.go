package domain

import "fmt"

// A reading of a location's calendar: whole days elapsed plus the hour within the day.
// A Time carries no day length of its own; the owning Location's hours-per-day
// decides how many hours a Day is worth.
type Time struct {
	Day  int `json:"day"`
	Hour int `json:"hour"`
}

// Compare returns -1, 0 or +1 ordering t against other.
func (t Time) Compare(other Time) int {
	switch {
	case t.Day < other.Day:
		return -1
	case t.Day > other.Day:
		return 1
	case t.Hour < other.Hour:
		return -1
	case t.Hour > other.Hour:
		return 1
	}
	return 0
}

// Before reports whether t precedes other.
func (t Time) Before(other Time) bool { return t.Compare(other) < 0 }

func (t Time) String() string {
	return fmt.Sprintf("day %d hour %02d", t.Day, t.Hour)
}

// Number of hours from `from` to `to` in a calendar of hoursPerDay.
// Negative when `to` precedes `from`.
func HoursBetween(from, to Time, hoursPerDay int) int64 {
	return absoluteHours(to, hoursPerDay) - absoluteHours(from, hoursPerDay)
}

// Advance t by hours in a calendar of hoursPerDay, normalising so 0 <= Hour < hoursPerDay.
func Advance(t Time, hours int64, hoursPerDay int) Time {
	hpd := int64(hoursPerDay)
	total := absoluteHours(t, hoursPerDay) + hours

	day := total / hpd
	hour := total % hpd
	if hour < 0 {
		// floor division for readings before day 0
		day--
		hour += hpd
	}
	return Time{Day: int(day), Hour: int(hour)}
}

func absoluteHours(t Time, hoursPerDay int) int64 {
	return int64(t.Day)*int64(hoursPerDay) + int64(t.Hour)
}
