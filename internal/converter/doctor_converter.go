package converter

import (
	"doctor-slot-sync/internal/delivery/dto"
	"doctor-slot-sync/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:        doctor.ID,
		Name:      doctor.Name,
		HasError:  doctor.HasError,
		UpdatedAt: doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorToDetailResponse converts a Doctor and its slots to DoctorDetailResponse DTO
func DoctorToDetailResponse(doctor *entity.Doctor, slots []entity.Slot) *dto.DoctorDetailResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorDetailResponse{
		DoctorResponse: *DoctorToResponse(doctor),
		Slots:          SlotsToResponses(slots),
	}
}

func SlotsToResponses(slots []entity.Slot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = dto.SlotResponse{
			Start:     slot.Start,
			End:       slot.End,
			CreatedAt: slot.CreatedAt,
		}
	}
	return responses
}
