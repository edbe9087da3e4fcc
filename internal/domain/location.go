package domain

import (
	"fmt"
	"strings"
)

// A place with its own calendar. Every Location is anchored to the same
// absolute instant (program start): its epoch is what its calendar read at
// that instant, so two locations with different day lengths can be projected
// onto each other through absolute hours.
type Location struct {
	name        string
	hoursPerDay int
	epoch       Time
	now         Time
}

func NewLocation(name string, hoursPerDay int, epoch Time) (*Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("new location: %w: name must be non-empty", ErrInvalidArgument)
	}

	if hoursPerDay <= 0 {
		return nil, fmt.Errorf("new location %q: %w: hours per day must be positive, got %d", name, ErrInvalidArgument, hoursPerDay)
	}

	l := &Location{name: name, hoursPerDay: hoursPerDay, epoch: epoch, now: epoch}
	if !l.Valid(epoch) {
		return nil, fmt.Errorf("new location %q: %w: epoch %s is not a valid reading", name, ErrInvalidArgument, epoch)
	}

	return l, nil
}

func (l *Location) Name() string     { return l.name }
func (l *Location) HoursPerDay() int { return l.hoursPerDay }
func (l *Location) Epoch() Time      { return l.epoch }
func (l *Location) Now() Time        { return l.now }

// Report whether t is a well-formed reading of this calendar.
func (l *Location) Valid(t Time) bool {
	return t.Day >= 0 && t.Hour >= 0 && t.Hour < l.hoursPerDay
}

// Hours between this location's calendar-zero and t.
func (l *Location) HoursSinceEpoch(t Time) int64 {
	return HoursBetween(l.epoch, t, l.hoursPerDay)
}

// This location's calendar-zero advanced by hours.
func (l *Location) EpochPlus(hours int64) Time {
	return Advance(l.epoch, hours, l.hoursPerDay)
}

// Hours elapsed since the shared epoch, as seen by this location's clock.
func (l *Location) AbsoluteHour() int64 {
	return l.HoursSinceEpoch(l.now)
}

// Move this location's present forward by one hour.
func (l *Location) Tick() {
	l.now = Advance(l.now, 1, l.hoursPerDay)
}

func (l *Location) String() string { return l.name }
