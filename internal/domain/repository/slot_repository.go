package repository

//go:generate mockgen -destination=mocks/mock_slot_repository.go -package=mocks -source=slot_repository.go SlotRepository

import (
	"time"

	"doctor-slot-sync/internal/domain/entity"

	"gorm.io/gorm"
)

type SlotRepository interface {
	FindByDoctorAndStart(db *gorm.DB, doctorID int64, start time.Time) (*entity.Slot, error)
	FindByDoctorID(db *gorm.DB, doctorID int64) ([]entity.Slot, error)
	Save(db *gorm.DB, slot *entity.Slot) error
}
