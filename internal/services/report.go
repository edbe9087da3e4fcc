package services

import (
	"voyage-simulator/internal/domain"
)

// Capture the current state of every location and vehicle.
//
// A location's population counts living occupants of vehicles still waiting
// there to leave, plus those of vehicles that have arrived there.
func Snapshot(sim *Simulation) domain.Report {
	sc := sim.Scenario()

	population := make(map[*domain.Location]int, len(sc.Locations))
	vehicles := make([]domain.VehicleStatus, 0, len(sc.Vehicles))

	for _, v := range sc.Vehicles {
		survivors := living(v.Occupants())

		switch v.State() {
		case domain.StateWaiting:
			population[v.Origin()] += survivors
		case domain.StateArrived:
			population[v.Destination()] += survivors
		}

		vehicles = append(vehicles, domain.VehicleStatus{
			Name:           v.Name(),
			Origin:         v.Origin().Name(),
			Destination:    v.Destination().Name(),
			State:          v.State().String(),
			RemainingHours: v.RemainingHours(),
			TargetArrival:  v.TargetArrival(),
			Survivors:      survivors,
		})
	}

	locations := make([]domain.LocationStatus, 0, len(sc.Locations))
	for _, l := range sc.Locations {
		locations = append(locations, domain.LocationStatus{
			Name:         l.Name(),
			HoursPerDay:  l.HoursPerDay(),
			Now:          l.Now(),
			ElapsedHours: l.AbsoluteHour(),
			Population:   population[l],
		})
	}

	return domain.Report{
		Hour:      sim.Hour(),
		Locations: locations,
		Vehicles:  vehicles,
	}
}

func living(occupants []domain.Occupant) int {
	n := 0
	for _, o := range occupants {
		if !o.Dead() {
			n++
		}
	}
	return n
}
