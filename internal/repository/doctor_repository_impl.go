package repository

import (
	"errors"

	"doctor-slot-sync/internal/domain/entity"
	domainRepo "doctor-slot-sync/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) FindByID(db *gorm.DB, id string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	query := db.Model(&entity.Doctor{})

	if filter != nil && filter.HasError != nil {
		query = query.Where("has_error = ?", *filter.HasError)
	}

	err := query.Order("name ASC, id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

// Save inserts the doctor or overwrites every column of an existing row
func (r *doctorRepository) Save(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Save(doctor).Error
}
