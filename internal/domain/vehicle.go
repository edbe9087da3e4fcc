package domain

import (
	"fmt"
	"reflect"
	"strings"
)

// A single journey between two locations.
//
// The target arrival time is fixed when the vehicle is built, by projecting
// the departure through the shared absolute-hour epoch into the destination's
// calendar. Nothing after construction touches it.
//
// A Vehicle is not safe for concurrent use; the driver steps it from one goroutine.
type Vehicle struct {
	name          string
	origin        *Location
	destination   *Location
	departure     Time
	totalHours    int
	targetArrival Time

	remainingHours int
	state          State
	occupants      []Occupant

	// called after every state change; nil means nobody is listening
	onTransition func(v *Vehicle, from, to State)
}

func NewVehicle(name string, origin, destination *Location, departure Time, transitHours int) (*Vehicle, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("new vehicle: %w: name must be non-empty", ErrInvalidArgument)
	}

	if origin == nil {
		return nil, fmt.Errorf("new vehicle %q: %w: origin must be non-nil", name, ErrInvalidArgument)
	}

	if destination == nil {
		return nil, fmt.Errorf("new vehicle %q: %w: destination must be non-nil", name, ErrInvalidArgument)
	}

	if !origin.Valid(departure) {
		return nil, fmt.Errorf(
			"new vehicle %q: %w: departure %s is not a valid reading in %s (hours per day=%d)",
			name, ErrInvalidArgument, departure, origin.Name(), origin.HoursPerDay(),
		)
	}

	if transitHours < 0 {
		return nil, fmt.Errorf("new vehicle %q: %w: transit hours must be non-negative, got %d", name, ErrInvalidArgument, transitHours)
	}

	// Hours from program start until departure, in the origin's calendar, then
	// the same absolute span plus the flight projected into the destination's.
	waitHours := origin.HoursSinceEpoch(departure)
	totalAbsolute := waitHours + int64(transitHours)

	return &Vehicle{
		name:           name,
		origin:         origin,
		destination:    destination,
		departure:      departure,
		totalHours:     transitHours,
		targetArrival:  destination.EpochPlus(totalAbsolute),
		remainingHours: transitHours,
		state:          StateWaiting,
	}, nil
}

// Register fn to be told about every state change of v.
func (v *Vehicle) OnTransition(fn func(v *Vehicle, from, to State)) {
	v.onTransition = fn
}

// Report whether v is waiting and its origin's clock has reached the departure time.
func (v *Vehicle) HasDepartureArrived() bool {
	return v.state == StateWaiting && !v.origin.Now().Before(v.departure)
}

// Leave the origin. Only a waiting vehicle departs; the departure-time check
// is left to the caller.
func (v *Vehicle) Depart() {
	v.fire(TriggerDepart)
}

// Spend one hour in transit. Does nothing unless the vehicle is en route.
func (v *Vehicle) AdvanceOneHour() {
	if v.state != StateEnRoute {
		return
	}

	if v.remainingHours > 0 {
		v.remainingHours--
	}
	if v.remainingHours == 0 {
		v.fire(TriggerArrive)
	}
}

// Drop every dead occupant. A vehicle left with nobody aboard is destroyed,
// unless it has already arrived.
func (v *Vehicle) ReconcileDeaths() {
	alive := make([]Occupant, 0, len(v.occupants))
	for _, o := range v.occupants {
		if !o.Dead() {
			alive = append(alive, o)
		}
	}
	v.occupants = alive

	if len(v.occupants) == 0 && v.state != StateArrived {
		v.fire(TriggerLoseCrew)
	}
}

// Put an occupant aboard. Accepted in every state; adding to a vehicle that
// has already arrived or been destroyed has no effect on its state.
func (v *Vehicle) AddOccupant(o Occupant) error {
	if isNil(o) {
		return fmt.Errorf("add occupant to %q: %w: occupant must be non-nil", v.name, ErrInvalidArgument)
	}

	v.occupants = append(v.occupants, o)
	return nil
}

// Untyped nil, or an interface holding a nil pointer of any implementation.
func isNil(o Occupant) bool {
	if o == nil {
		return true
	}
	rv := reflect.ValueOf(o)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (v *Vehicle) fire(t Trigger) {
	to, ok := next(v.state, t)
	if !ok {
		return
	}

	from := v.state
	v.state = to
	if v.onTransition != nil {
		v.onTransition(v, from, to)
	}
}

func (v *Vehicle) Name() string           { return v.name }
func (v *Vehicle) Origin() *Location      { return v.origin }
func (v *Vehicle) Destination() *Location { return v.destination }
func (v *Vehicle) DepartureTime() Time    { return v.departure }
func (v *Vehicle) TotalHours() int        { return v.totalHours }
func (v *Vehicle) RemainingHours() int    { return v.remainingHours }
func (v *Vehicle) State() State           { return v.state }
func (v *Vehicle) TargetArrival() Time    { return v.targetArrival }

// Snapshot of the occupants currently aboard.
func (v *Vehicle) Occupants() []Occupant {
	out := make([]Occupant, len(v.occupants))
	copy(out, v.occupants)
	return out
}

func (v *Vehicle) String() string {
	return fmt.Sprintf("%s (%s → %s)", v.name, v.origin.Name(), v.destination.Name())
}
