package service

import (
	"context"

	"doctor-slot-sync/internal/domain/entity"
	"doctor-slot-sync/internal/infrastructure/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"k8s.io/utils/clock"
)

const (
	TriggerCron    = "cron"
	TriggerStartup = "startup"
	TriggerHTTP    = "http"
	TriggerCLI     = "cli"
)

// DoctorSlotSyncer runs one synchronization cycle
type DoctorSlotSyncer interface {
	SyncDoctorSlots(ctx context.Context) error
}

// SyncRunner runs synchronization cycles for every trigger.
// Triggers that arrive while a run is in flight share its result instead of starting another run.
type SyncRunner struct {
	syncer      DoctorSlotSyncer
	statusStore SyncStatusStore
	metrics     *metrics.SyncMetrics
	clock       clock.PassiveClock
	log         *logrus.Logger

	group singleflight.Group
}

func NewSyncRunner(
	syncer DoctorSlotSyncer,
	statusStore SyncStatusStore,
	syncMetrics *metrics.SyncMetrics,
	clk clock.PassiveClock,
	log *logrus.Logger,
) *SyncRunner {
	return &SyncRunner{
		syncer:      syncer,
		statusStore: statusStore,
		metrics:     syncMetrics,
		clock:       clk,
		log:         log,
	}
}

// Run returns the status of the run that served this trigger along with its error
func (r *SyncRunner) Run(ctx context.Context, trigger string) (*entity.SyncStatus, error) {
	value, _, shared := r.group.Do("sync", func() (any, error) {
		return r.run(ctx, trigger), nil
	})

	status := value.(*entity.SyncStatus)
	if shared {
		r.log.Debugf("Trigger %s joined run %s", trigger, status.RunID)
	}

	if status.Status == entity.SyncRunFailed {
		return status, status.Err()
	}
	return status, nil
}

func (r *SyncRunner) run(ctx context.Context, trigger string) *entity.SyncStatus {
	status := &entity.SyncStatus{
		RunID:     uuid.NewString(),
		Trigger:   trigger,
		Status:    entity.SyncRunRunning,
		StartedAt: r.clock.Now(),
	}
	log := r.log.WithFields(logrus.Fields{"run_id": status.RunID, "trigger": trigger})
	log.Info("Starting doctor slot synchronization")

	r.saveStatus(ctx, status)

	err := r.syncer.SyncDoctorSlots(ctx)
	status.Finish(r.clock.Now(), err)
	r.metrics.ObserveRun(status.Status, status.Duration())

	if err != nil {
		log.Warnf("Failed to synchronize doctor slots: %+v", err)
	} else {
		log.Infof("Doctor slot synchronization finished in %v", status.Duration())
	}

	// the status must be recorded even if the trigger was cancelled
	r.saveStatus(context.WithoutCancel(ctx), status)

	return status
}

func (r *SyncRunner) saveStatus(ctx context.Context, status *entity.SyncStatus) {
	if r.statusStore == nil {
		return
	}
	if err := r.statusStore.SaveStatus(ctx, status); err != nil {
		r.log.Warnf("Failed to record sync status: %+v", err)
	}
}

// LastStatus returns the status of the most recent run
func (r *SyncRunner) LastStatus(ctx context.Context) (*entity.SyncStatus, error) {
	if r.statusStore == nil {
		return nil, ErrSyncStatusNotFound
	}
	return r.statusStore.LastStatus(ctx)
}
