package domain

// Plain-data description of a simulation, as stored or seeded.
// It is turned into live Locations, Vehicles and People by services.BuildScenario.
type ScenarioSeed struct {
	Locations []LocationSeed `json:"locations"`
	Vehicles  []VehicleSeed  `json:"vehicles"`
	People    []PersonSeed   `json:"people"`
}

type LocationSeed struct {
	Name        string `json:"name"`
	HoursPerDay int    `json:"hours_per_day"`
	EpochDay    int    `json:"epoch_day"`
	EpochHour   int    `json:"epoch_hour"`
}

type VehicleSeed struct {
	Name          string `json:"name"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDay  int    `json:"departure_day"`
	DepartureHour int    `json:"departure_hour"`
	TransitHours  int    `json:"transit_hours"`
}

type PersonSeed struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	LifetimeHours int    `json:"lifetime_hours"`
	Vehicle       string `json:"vehicle"`
}

// Live objects of a simulation. Vehicles hold references into Locations;
// People are the same objects the vehicles carry as occupants.
type Scenario struct {
	Locations []*Location
	Vehicles  []*Vehicle
	People    []*Person
}
