package domain

import (
	"time"

	"github.com/google/uuid"
)

// State of every location and vehicle at one simulated hour.
type Report struct {
	Hour      int              `json:"hour"`
	Locations []LocationStatus `json:"locations"`
	Vehicles  []VehicleStatus  `json:"vehicles"`
}

type LocationStatus struct {
	Name         string `json:"name"`
	HoursPerDay  int    `json:"hours_per_day"`
	Now          Time   `json:"now"`
	ElapsedHours int64  `json:"elapsed_hours"`
	Population   int    `json:"population"`
}

type VehicleStatus struct {
	Name           string `json:"name"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	State          string `json:"state"`
	RemainingHours int    `json:"remaining_hours"`
	TargetArrival  Time   `json:"target_arrival"`
	Survivors      int    `json:"survivors"`
}

// Outcome of one completed simulation run.
type RunSummary struct {
	ID        uuid.UUID `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Hours     int       `json:"hours"`
	Arrived   int       `json:"arrived"`
	Destroyed int       `json:"destroyed"`
	Report    Report    `json:"report"`
}
