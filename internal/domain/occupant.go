package domain

import (
	"fmt"
	"strings"
)

// Anything a vehicle can carry. The vehicle only ever asks whether it is dead.
type Occupant interface {
	Dead() bool
}

// A traveller with a finite lifetime measured in simulated hours.
// VehicleName records which vehicle the person was booked on.
type Person struct {
	Name          string
	Age           int
	LifetimeHours int
	VehicleName   string
}

func NewPerson(name string, age, lifetimeHours int, vehicleName string) (*Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("new person: %w: name must be non-empty", ErrInvalidArgument)
	}

	if age < 0 {
		return nil, fmt.Errorf("new person %q: %w: age must be non-negative, got %d", name, ErrInvalidArgument, age)
	}

	if lifetimeHours < 0 {
		return nil, fmt.Errorf("new person %q: %w: lifetime must be non-negative, got %d", name, ErrInvalidArgument, lifetimeHours)
	}

	return &Person{
		Name:          name,
		Age:           age,
		LifetimeHours: lifetimeHours,
		VehicleName:   strings.TrimSpace(vehicleName),
	}, nil
}

// Spend one hour of the person's remaining lifetime.
func (p *Person) Live() {
	if p.LifetimeHours > 0 {
		p.LifetimeHours--
	}
}

func (p *Person) Dead() bool { return p.LifetimeHours <= 0 }
