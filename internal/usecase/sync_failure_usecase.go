package usecase

import (
	"context"

	"doctor-slot-sync/internal/converter"
	"doctor-slot-sync/internal/delivery/dto"
	"doctor-slot-sync/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SyncFailureUsecase interface {
	GetRecentFailures(ctx context.Context, limit int) (*dto.SyncFailureListResponse, error)
}

type syncFailureUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	failureRepo repository.SyncFailureRepository
}

func NewSyncFailureUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	failureRepo repository.SyncFailureRepository,
) SyncFailureUsecase {
	return &syncFailureUsecase{
		db:          db,
		log:         log,
		failureRepo: failureRepo,
	}
}

func (u *syncFailureUsecase) GetRecentFailures(ctx context.Context, limit int) (*dto.SyncFailureListResponse, error) {
	failures, err := u.failureRepo.FindRecent(u.db, limit)
	if err != nil {
		u.log.Warnf("Failed to find sync failures: %+v", err)
		return nil, err
	}

	return &dto.SyncFailureListResponse{
		Failures: converter.SyncFailuresToResponses(failures),
		Total:    len(failures),
	}, nil
}
