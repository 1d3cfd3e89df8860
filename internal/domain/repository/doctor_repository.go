package repository

//go:generate mockgen -destination=mocks/mock_doctor_repository.go -package=mocks -source=doctor_repository.go DoctorRepository

import (
	"doctor-slot-sync/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	FindByID(db *gorm.DB, id string) (*entity.Doctor, error)
	FindAll(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error)
	Save(db *gorm.DB, doctor *entity.Doctor) error
}
