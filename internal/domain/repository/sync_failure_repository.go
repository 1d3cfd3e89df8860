package repository

//go:generate mockgen -destination=mocks/mock_sync_failure_repository.go -package=mocks -source=sync_failure_repository.go SyncFailureRepository

import (
	"doctor-slot-sync/internal/domain/entity"

	"gorm.io/gorm"
)

type SyncFailureRepository interface {
	Create(db *gorm.DB, failure *entity.SyncFailure) error
	FindRecent(db *gorm.DB, limit int) ([]entity.SyncFailure, error)
}
