package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"doctor-slot-sync/internal/domain/entity"
	"doctor-slot-sync/internal/domain/gateway"
	"doctor-slot-sync/internal/domain/repository"
	"doctor-slot-sync/internal/infrastructure/metrics"
	"doctor-slot-sync/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
	"gorm.io/gorm"
)

// ErrFatalFetch is returned when the doctor roster could not be fetched; nothing is written then
var ErrFatalFetch = errors.New("failed to fetch doctors from vendor")

const slotFetchErrorMessage = "Error fetching slots for doctor"

type DoctorSlotSyncUsecase interface {
	SyncDoctorSlots(ctx context.Context) error
}

type doctorSlotSyncUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	vendor      gateway.VendorGateway
	doctorRepo  repository.DoctorRepository
	slotRepo    repository.SlotRepository
	reconciler  *service.SlotReconciler
	slotLocker  *service.SlotLocker
	failureSink service.FailureSink
	metrics     *metrics.SyncMetrics
	concurrency int
}

func NewDoctorSlotSyncUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	vendor gateway.VendorGateway,
	doctorRepo repository.DoctorRepository,
	slotRepo repository.SlotRepository,
	reconciler *service.SlotReconciler,
	slotLocker *service.SlotLocker,
	failureSink service.FailureSink,
	syncMetrics *metrics.SyncMetrics,
	concurrency int,
) DoctorSlotSyncUsecase {
	if concurrency < 1 {
		concurrency = 1
	}

	return &doctorSlotSyncUsecase{
		db:          db,
		log:         log,
		vendor:      vendor,
		doctorRepo:  doctorRepo,
		slotRepo:    slotRepo,
		reconciler:  reconciler,
		slotLocker:  slotLocker,
		failureSink: failureSink,
		metrics:     syncMetrics,
		concurrency: concurrency,
	}
}

// SyncDoctorSlots copies the vendor roster and every doctor's slots into the store.
// A failed slot fetch flags that doctor only; a storage error stops the run and is returned as is.
func (u *doctorSlotSyncUsecase) SyncDoctorSlots(ctx context.Context) error {
	doctors, err := u.vendor.ListDoctors(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch doctors: %+v", err)
		return fmt.Errorf("%w: %w", ErrFatalFetch, err)
	}

	u.log.Infof("Fetched %d doctors from vendor", len(doctors))

	if u.concurrency == 1 {
		for _, doctor := range doctors {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := u.syncDoctor(ctx, doctor); err != nil {
				return err
			}
		}
		return nil
	}

	p := pool.New().
		WithMaxGoroutines(u.concurrency).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	for _, doctor := range doctors {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return u.syncDoctor(ctx, doctor)
		})
	}

	return p.Wait()
}

func (u *doctorSlotSyncUsecase) syncDoctor(ctx context.Context, vendorDoctor gateway.VendorDoctor) error {
	doctor, err := u.upsertDoctor(vendorDoctor)
	if err != nil {
		return err
	}

	slots, err := u.vendor.ListSlots(ctx, vendorDoctor.ID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return u.markError(ctx, doctor, vendorDoctor.ID, err)
	}

	for _, slot := range slots {
		if err := u.syncSlot(vendorDoctor.ID, slot); err != nil {
			return err
		}
	}

	return nil
}

// upsertDoctor saves the doctor with its normalized name and a cleared error flag
func (u *doctorSlotSyncUsecase) upsertDoctor(vendorDoctor gateway.VendorDoctor) (*entity.Doctor, error) {
	id := strconv.FormatInt(vendorDoctor.ID, 10)
	name := service.NormalizeName(vendorDoctor.Name)

	doctor, err := u.doctorRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}

	if doctor == nil {
		doctor = entity.NewDoctor(id, name)
	}
	doctor.Name = name
	doctor.ClearError()

	if err := u.doctorRepo.Save(u.db, doctor); err != nil {
		u.log.Warnf("Failed to save doctor %s: %+v", id, err)
		return nil, err
	}

	u.metrics.DoctorSynced()
	return doctor, nil
}

func (u *doctorSlotSyncUsecase) markError(ctx context.Context, doctor *entity.Doctor, doctorID int64, fetchErr error) error {
	u.log.WithField("doctor_id", doctorID).Warnf("Failed to fetch slots: %+v", fetchErr)
	u.metrics.SlotFetchFailed()

	doctor.MarkError()
	if err := u.doctorRepo.Save(u.db, doctor); err != nil {
		u.log.Warnf("Failed to save doctor %s: %+v", doctor.ID, err)
		return err
	}

	u.failureSink.Report(ctx, doctorID, slotFetchErrorMessage, entity.JSON{"error": fetchErr.Error()})
	return nil
}

func (u *doctorSlotSyncUsecase) syncSlot(doctorID int64, vendorSlot gateway.VendorSlot) error {
	unlock := u.slotLocker.Lock(doctorID, vendorSlot.Start)
	defer unlock()

	existing, err := u.slotRepo.FindByDoctorAndStart(u.db, doctorID, vendorSlot.Start)
	if err != nil {
		u.log.Warnf("Failed to find slot of doctor %d at %s: %+v", doctorID, vendorSlot.Start, err)
		return err
	}

	slot, outcome := u.reconciler.Reconcile(existing, vendorSlot.Start, vendorSlot.End, doctorID)

	if err := u.slotRepo.Save(u.db, slot); err != nil {
		u.log.Warnf("Failed to save slot of doctor %d at %s: %+v", doctorID, vendorSlot.Start, err)
		return err
	}

	u.metrics.SlotReconciled(string(outcome))
	return nil
}
