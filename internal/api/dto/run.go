package dto

import (
	"time"
	"voyage-simulator/internal/domain"
)

type SimulationRequest struct {
	MaxHours *int `json:"max_hours"`
}

type RunResponse struct {
	ID        string        `json:"id"`
	StartedAt time.Time     `json:"started_at"`
	Hours     int           `json:"hours"`
	Arrived   int           `json:"arrived"`
	Destroyed int           `json:"destroyed"`
	Report    domain.Report `json:"report"`
}

type ListRunsResponse struct {
	Runs []RunResponse `json:"runs"`
}

func NewRunResponse(run domain.RunSummary) RunResponse {
	return RunResponse{
		ID:        run.ID.String(),
		StartedAt: run.StartedAt,
		Hours:     run.Hours,
		Arrived:   run.Arrived,
		Destroyed: run.Destroyed,
		Report:    run.Report,
	}
}
