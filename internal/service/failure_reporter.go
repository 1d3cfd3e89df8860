package service

//go:generate mockgen -destination=mocks/mock_failure_sink.go -package=mocks -source=failure_reporter.go FailureSink

import (
	"context"
	"time"

	"doctor-slot-sync/internal/domain/entity"
	"doctor-slot-sync/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"k8s.io/utils/clock"
)

// FailureSink receives notifications about doctors whose slots could not be synchronized
type FailureSink interface {
	// ShouldReport is false during the quiet period
	ShouldReport() bool
	// Report drops the notification when ShouldReport is false
	Report(ctx context.Context, doctorID int64, message string, extra entity.JSON)
}

// FailurePublisher forwards failures to an external queue
type FailurePublisher interface {
	PublishFailure(ctx context.Context, failure *entity.SyncFailure) error
}

type failureReporter struct {
	db          *gorm.DB
	log         *logrus.Logger
	clock       clock.PassiveClock
	location    *time.Location
	quietDay    time.Weekday
	failureRepo repository.SyncFailureRepository
	publisher   FailurePublisher
}

// NewFailureReporter returns a FailureSink that logs, stores and optionally publishes failures.
// publisher may be nil.
func NewFailureReporter(
	db *gorm.DB,
	log *logrus.Logger,
	clk clock.PassiveClock,
	location *time.Location,
	quietDay time.Weekday,
	failureRepo repository.SyncFailureRepository,
	publisher FailurePublisher,
) FailureSink {
	if location == nil {
		location = time.UTC
	}

	return &failureReporter{
		db:          db,
		log:         log,
		clock:       clk,
		location:    location,
		quietDay:    quietDay,
		failureRepo: failureRepo,
		publisher:   publisher,
	}
}

func (r *failureReporter) ShouldReport() bool {
	return r.clock.Now().In(r.location).Weekday() != r.quietDay
}

func (r *failureReporter) Report(ctx context.Context, doctorID int64, message string, extra entity.JSON) {
	if !r.ShouldReport() {
		return
	}

	details := entity.JSON{"doctorId": doctorID}.Merge(extra)
	r.log.WithFields(logrus.Fields(details)).Warn(message)

	failure := &entity.SyncFailure{
		DoctorID:  doctorID,
		Message:   message,
		Context:   details,
		CreatedAt: r.clock.Now(),
	}

	// notification errors never reach the caller
	if err := r.failureRepo.Create(r.db, failure); err != nil {
		r.log.Warnf("Failed to store sync failure for doctor %d: %+v", doctorID, err)
	}

	if r.publisher == nil {
		return
	}

	if err := r.publisher.PublishFailure(ctx, failure); err != nil {
		r.log.Warnf("Failed to publish sync failure for doctor %d: %+v", doctorID, err)
	}
}
