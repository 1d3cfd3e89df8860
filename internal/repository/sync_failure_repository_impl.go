package repository

import (
	"doctor-slot-sync/internal/domain/entity"
	domainRepo "doctor-slot-sync/internal/domain/repository"

	"gorm.io/gorm"
)

type syncFailureRepository struct{}

func NewSyncFailureRepository() domainRepo.SyncFailureRepository {
	return &syncFailureRepository{}
}

func (r *syncFailureRepository) Create(db *gorm.DB, failure *entity.SyncFailure) error {
	return db.Create(failure).Error
}

func (r *syncFailureRepository) FindRecent(db *gorm.DB, limit int) ([]entity.SyncFailure, error) {
	var failures []entity.SyncFailure
	err := db.Order("created_at DESC, id DESC").Limit(limit).Find(&failures).Error
	if err != nil {
		return nil, err
	}
	return failures, nil
}
