package scheduler

import (
	"context"
	"sync"

	"doctor-slot-sync/config"
	"doctor-slot-sync/internal/domain/entity"
	"doctor-slot-sync/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultCronSpec is used when the configured spec cannot be parsed
const DefaultCronSpec = "@every 5m"

// SyncRunner runs one synchronization cycle per trigger
type SyncRunner interface {
	Run(ctx context.Context, trigger string) (*entity.SyncStatus, error)
}

// SyncWorker periodically synchronizes doctor slots
type SyncWorker struct {
	log    *logrus.Logger
	cfg    config.SyncConfig
	runner SyncRunner

	cron   *cron.Cron
	spec   string
	runCtx context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSyncWorker(log *logrus.Logger, cfg config.SyncConfig, runner SyncRunner) *SyncWorker {
	return &SyncWorker{log: log, cfg: cfg, runner: runner}
}

// Start schedules the cycles and, if configured, runs one immediately in the background
func (w *SyncWorker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)

	cronLogger := cron.PrintfLogger(w.log)
	newCron := func() *cron.Cron {
		// a tick that arrives while a cycle is still running is skipped
		return cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)))
	}

	c := newCron()
	w.spec = w.cfg.CronSpec
	if _, err := c.AddFunc(w.spec, func() { w.runOnce(service.TriggerCron) }); err != nil {
		w.log.Warnf("Failed to schedule sync with cron spec %q, falling back to %s: %+v", w.spec, DefaultCronSpec, err)
		c = newCron()
		w.spec = DefaultCronSpec
		_, _ = c.AddFunc(w.spec, func() { w.runOnce(service.TriggerCron) })
	}
	c.Start()
	w.cron = c

	w.log.Infof("Sync worker scheduled with %s", w.spec)

	if w.cfg.RunOnStartup {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.runOnce(service.TriggerStartup)
		}()
	}
}

// Stop cancels in-flight cycles and waits for them to return
func (w *SyncWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
	w.wg.Wait()
	w.log.Info("Sync worker stopped")
}

func (w *SyncWorker) runOnce(trigger string) {
	if err := w.runCtx.Err(); err != nil {
		return
	}

	status, err := w.runner.Run(w.runCtx, trigger)
	if err != nil {
		w.log.Warnf("Failed to run %s sync: %+v", trigger, err)
		return
	}

	w.log.WithField("run_id", status.RunID).Debugf("%s sync finished", trigger)
}
