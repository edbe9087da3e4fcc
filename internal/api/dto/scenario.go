package dto

import "voyage-simulator/internal/domain"

type ScenarioResponse struct {
	Locations []domain.LocationSeed `json:"locations"`
	Vehicles  []domain.VehicleSeed  `json:"vehicles"`
	People    []domain.PersonSeed   `json:"people"`
}
