package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"voyage-simulator/internal/domain"
)

// Read a scenario seed file and normalise its rows.
// Names are trimmed and must be non-empty; deeper checks (references,
// calendar ranges) happen when the scenario is built.
func ReadSeedFile(jsonPath string) (domain.ScenarioSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return domain.ScenarioSeed{}, fmt.Errorf("read seed: read %q: %w", jsonPath, err)
	}

	var seed domain.ScenarioSeed
	if err := json.Unmarshal(bytes, &seed); err != nil {
		return domain.ScenarioSeed{}, fmt.Errorf("read seed: parse json: %w", err)
	}

	if err := normalizeSeed(&seed); err != nil {
		return domain.ScenarioSeed{}, fmt.Errorf("read seed %q: %w", jsonPath, err)
	}

	return seed, nil
}

func normalizeSeed(seed *domain.ScenarioSeed) error {
	for i := range seed.Locations {
		l := &seed.Locations[i]
		l.Name = strings.TrimSpace(l.Name)
		if l.Name == "" {
			return fmt.Errorf("%w: location at index %d: name cannot be empty", domain.ErrInvalidArgument, i+1)
		}
	}

	for i := range seed.Vehicles {
		v := &seed.Vehicles[i]
		v.Name = strings.TrimSpace(v.Name)
		v.Origin = strings.TrimSpace(v.Origin)
		v.Destination = strings.TrimSpace(v.Destination)
		if v.Name == "" || v.Origin == "" || v.Destination == "" {
			return fmt.Errorf("%w: vehicle at index %d: name, origin and destination are required", domain.ErrInvalidArgument, i+1)
		}
	}

	for i := range seed.People {
		p := &seed.People[i]
		p.Name = strings.TrimSpace(p.Name)
		p.Vehicle = strings.TrimSpace(p.Vehicle)
		if p.Name == "" || p.Vehicle == "" {
			return fmt.Errorf("%w: person at index %d: name and vehicle are required", domain.ErrInvalidArgument, i+1)
		}
	}

	return nil
}
