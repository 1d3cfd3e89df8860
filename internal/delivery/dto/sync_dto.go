package dto

import (
	"time"

	"doctor-slot-sync/internal/domain/entity"
)

// Request DTOs

type ListSyncFailuresQuery struct {
	Limit int `validate:"min=1,max=500"`
}

// Response DTOs

type SyncStatusResponse struct {
	RunID      string     `json:"run_id"`
	Trigger    string     `json:"trigger"`
	Status     string     `json:"status"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	DurationMs int64      `json:"duration_ms,omitempty"`
	Error      string     `json:"error,omitempty"`
}

type SyncFailureResponse struct {
	ID        int64       `json:"id"`
	DoctorID  int64       `json:"doctor_id"`
	Message   string      `json:"message"`
	Context   entity.JSON `json:"context,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type SyncFailureListResponse struct {
	Failures []SyncFailureResponse `json:"failures"`
	Total    int                   `json:"total"`
}
