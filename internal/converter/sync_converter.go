package converter

import (
	"doctor-slot-sync/internal/delivery/dto"
	"doctor-slot-sync/internal/domain/entity"
)

// SyncStatusToResponse converts a SyncStatus to SyncStatusResponse DTO
func SyncStatusToResponse(status *entity.SyncStatus) *dto.SyncStatusResponse {
	if status == nil {
		return nil
	}

	return &dto.SyncStatusResponse{
		RunID:      status.RunID,
		Trigger:    status.Trigger,
		Status:     status.Status,
		StartedAt:  status.StartedAt,
		FinishedAt: status.FinishedAt,
		DurationMs: status.Duration().Milliseconds(),
		Error:      status.Error,
	}
}

// SyncFailuresToResponses converts a slice of SyncFailure entities to slice of SyncFailureResponse DTOs
func SyncFailuresToResponses(failures []entity.SyncFailure) []dto.SyncFailureResponse {
	responses := make([]dto.SyncFailureResponse, len(failures))
	for i, failure := range failures {
		responses[i] = dto.SyncFailureResponse{
			ID:        failure.ID,
			DoctorID:  failure.DoctorID,
			Message:   failure.Message,
			Context:   failure.Context,
			CreatedAt: failure.CreatedAt,
		}
	}
	return responses
}
