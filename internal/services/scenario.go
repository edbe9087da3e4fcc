package services

import (
	"fmt"
	"strings"
	"voyage-simulator/internal/domain"
)

// Turn a stored scenario into live locations, vehicles and people.
//
// Every person boards the vehicle named in their row. References are resolved
// by exact (trimmed) name; unknown references and duplicate names are rejected.
func BuildScenario(seed domain.ScenarioSeed) (*domain.Scenario, error) {
	sc := &domain.Scenario{
		Locations: make([]*domain.Location, 0, len(seed.Locations)),
		Vehicles:  make([]*domain.Vehicle, 0, len(seed.Vehicles)),
		People:    make([]*domain.Person, 0, len(seed.People)),
	}

	locations := make(map[string]*domain.Location, len(seed.Locations))
	for i, ls := range seed.Locations {
		loc, err := domain.NewLocation(ls.Name, ls.HoursPerDay, domain.Time{Day: ls.EpochDay, Hour: ls.EpochHour})
		if err != nil {
			return nil, fmt.Errorf("build scenario: location #%d: %w", i+1, err)
		}
		if _, dup := locations[loc.Name()]; dup {
			return nil, fmt.Errorf("build scenario: %w: duplicate location %q", domain.ErrInvalidArgument, loc.Name())
		}
		locations[loc.Name()] = loc
		sc.Locations = append(sc.Locations, loc)
	}

	vehicles := make(map[string]*domain.Vehicle, len(seed.Vehicles))
	for i, vs := range seed.Vehicles {
		origin, ok := locations[strings.TrimSpace(vs.Origin)]
		if !ok {
			return nil, fmt.Errorf("build scenario: vehicle #%d: %w: unknown origin %q", i+1, domain.ErrInvalidArgument, vs.Origin)
		}
		destination, ok := locations[strings.TrimSpace(vs.Destination)]
		if !ok {
			return nil, fmt.Errorf("build scenario: vehicle #%d: %w: unknown destination %q", i+1, domain.ErrInvalidArgument, vs.Destination)
		}

		departure := domain.Time{Day: vs.DepartureDay, Hour: vs.DepartureHour}
		v, err := domain.NewVehicle(vs.Name, origin, destination, departure, vs.TransitHours)
		if err != nil {
			return nil, fmt.Errorf("build scenario: vehicle #%d: %w", i+1, err)
		}
		if _, dup := vehicles[v.Name()]; dup {
			return nil, fmt.Errorf("build scenario: %w: duplicate vehicle %q", domain.ErrInvalidArgument, v.Name())
		}
		vehicles[v.Name()] = v
		sc.Vehicles = append(sc.Vehicles, v)
	}

	for i, ps := range seed.People {
		p, err := domain.NewPerson(ps.Name, ps.Age, ps.LifetimeHours, ps.Vehicle)
		if err != nil {
			return nil, fmt.Errorf("build scenario: person #%d: %w", i+1, err)
		}

		v, ok := vehicles[p.VehicleName]
		if !ok {
			return nil, fmt.Errorf("build scenario: person %q: %w: unknown vehicle %q", p.Name, domain.ErrInvalidArgument, ps.Vehicle)
		}
		if err := v.AddOccupant(p); err != nil {
			return nil, fmt.Errorf("build scenario: person %q: %w", p.Name, err)
		}
		sc.People = append(sc.People, p)
	}

	return sc, nil
}
