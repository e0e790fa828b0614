package models

import (
	"time"

	"solar-dispatch/internal/analysis"
	"solar-dispatch/internal/model"
)

// SimulateResponse is returned from a simulation run.
type SimulateResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	DayCount  int       `json:"day_count"`

	Summary analysis.RunSummary `json:"summary"`
	// Days carries the full dispatch traces when requested.
	Days map[string]*model.DayResult `json:"day_results,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
