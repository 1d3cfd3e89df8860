package usecase

import (
	"context"
	"errors"
	"strconv"

	"doctor-slot-sync/internal/converter"
	"doctor-slot-sync/internal/delivery/dto"
	"doctor-slot-sync/internal/domain/entity"
	"doctor-slot-sync/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

// DoctorUsecase is the read side of the synchronized roster
type DoctorUsecase interface {
	GetAllDoctors(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorDetailResponse, error)
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	slotRepo   repository.SlotRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	slotRepo repository.SlotRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
		slotRepo:   slotRepo,
	}
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorDetailResponse, error) {
	// ids are the decimal vendor ids
	vendorID, err := strconv.ParseInt(doctorID, 10, 64)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	doctor, err := u.doctorRepo.FindByID(u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	slots, err := u.slotRepo.FindByDoctorID(u.db, vendorID)
	if err != nil {
		u.log.Warnf("Failed to find slots of doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return converter.DoctorToDetailResponse(doctor, slots), nil
}
