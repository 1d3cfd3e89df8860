package entity

// DoctorFilter is a domain-level filter for querying doctors.
// Used by repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	HasError *bool
}
