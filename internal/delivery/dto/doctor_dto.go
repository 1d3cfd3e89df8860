package dto

import "time"

// Request DTOs

type ListDoctorsQuery struct {
	HasError string `validate:"omitempty,oneof=true false"`
}

// Response DTOs

type DoctorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	HasError  bool      `json:"has_error"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SlotResponse struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	CreatedAt time.Time `json:"created_at"`
}

type DoctorDetailResponse struct {
	DoctorResponse
	Slots []SlotResponse `json:"slots"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
