package repository

import (
	"errors"
	"time"

	"doctor-slot-sync/internal/domain/entity"
	domainRepo "doctor-slot-sync/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type slotRepository struct{}

func NewSlotRepository() domainRepo.SlotRepository {
	return &slotRepository{}
}

func (r *slotRepository) FindByDoctorAndStart(db *gorm.DB, doctorID int64, start time.Time) (*entity.Slot, error) {
	var slot entity.Slot
	err := db.Where("doctor_id = ? AND start_at = ?", doctorID, start).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepository) FindByDoctorID(db *gorm.DB, doctorID int64) ([]entity.Slot, error) {
	var slots []entity.Slot
	err := db.Where("doctor_id = ?", doctorID).Order("start_at ASC").Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// Save updates a persisted slot or inserts a new one.
// An insert racing another writer for the same (doctor_id, start_at) keeps the row that won.
func (r *slotRepository) Save(db *gorm.DB, slot *entity.Slot) error {
	if slot.ID != 0 {
		return db.Model(slot).Update("end_at", slot.End).Error
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "doctor_id"}, {Name: "start_at"}},
		DoNothing: true,
	}).Create(slot).Error
}
