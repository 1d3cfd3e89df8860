package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"doctor-slot-sync/internal/domain/entity"
	"doctor-slot-sync/internal/infrastructure/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"
)

type fakeSyncer struct {
	calls   atomic.Int32
	err     error
	release chan struct{}
	started chan struct{}
	once    sync.Once
}

func (f *fakeSyncer) SyncDoctorSlots(ctx context.Context) error {
	f.calls.Add(1)
	if f.started != nil {
		f.once.Do(func() { close(f.started) })
	}
	if f.release != nil {
		<-f.release
	}
	return f.err
}

type memoryStatusStore struct {
	mu      sync.Mutex
	history []entity.SyncStatus
	err     error
}

func (s *memoryStatusStore) SaveStatus(_ context.Context, status *entity.SyncStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.history = append(s.history, *status)
	return nil
}

func (s *memoryStatusStore) LastStatus(_ context.Context) (*entity.SyncStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) == 0 {
		return nil, ErrSyncStatusNotFound
	}
	last := s.history[len(s.history)-1]
	return &last, nil
}

func newTestRunner(syncer DoctorSlotSyncer, store SyncStatusStore) *SyncRunner {
	log, _ := test.NewNullLogger()
	clk := clocktesting.NewFakePassiveClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	return NewSyncRunner(syncer, store, metrics.NewSyncMetrics(prometheus.NewRegistry()), clk, log)
}

func TestSyncRunner_RecordsSuccessfulRun(t *testing.T) {
	t.Parallel()
	store := &memoryStatusStore{}
	runner := newTestRunner(&fakeSyncer{}, store)

	status, err := runner.Run(context.Background(), TriggerCron)
	require.NoError(t, err)
	assert.Equal(t, entity.SyncRunDone, status.Status)
	assert.NotEmpty(t, status.RunID)
	assert.Equal(t, TriggerCron, status.Trigger)

	require.Len(t, store.history, 2)
	assert.Equal(t, entity.SyncRunRunning, store.history[0].Status)
	assert.Nil(t, store.history[0].FinishedAt)
	assert.Equal(t, entity.SyncRunDone, store.history[1].Status)
	assert.Equal(t, store.history[0].RunID, store.history[1].RunID)

	last, err := runner.LastStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, status.RunID, last.RunID)
}

func TestSyncRunner_RecordsFailedRun(t *testing.T) {
	t.Parallel()
	syncErr := errors.New("vendor down")
	store := &memoryStatusStore{}
	runner := newTestRunner(&fakeSyncer{err: syncErr}, store)

	status, err := runner.Run(context.Background(), TriggerHTTP)
	assert.ErrorIs(t, err, syncErr)
	assert.Equal(t, entity.SyncRunFailed, status.Status)
	assert.Equal(t, "vendor down", status.Error)
	assert.Equal(t, entity.SyncRunFailed, store.history[len(store.history)-1].Status)
}

func TestSyncRunner_StatusStoreErrorsDoNotFailRun(t *testing.T) {
	t.Parallel()
	runner := newTestRunner(&fakeSyncer{}, &memoryStatusStore{err: errors.New("redis down")})

	status, err := runner.Run(context.Background(), TriggerCron)
	require.NoError(t, err)
	assert.Equal(t, entity.SyncRunDone, status.Status)
}

func TestSyncRunner_CollapsesOverlappingTriggers(t *testing.T) {
	t.Parallel()
	syncer := &fakeSyncer{release: make(chan struct{}), started: make(chan struct{})}
	runner := newTestRunner(syncer, &memoryStatusStore{})

	results := make(chan *entity.SyncStatus, 2)
	go func() {
		status, _ := runner.Run(context.Background(), TriggerCron)
		results <- status
	}()
	<-syncer.started

	go func() {
		status, _ := runner.Run(context.Background(), TriggerHTTP)
		results <- status
	}()

	// give the second trigger time to join the in-flight run
	time.Sleep(50 * time.Millisecond)
	close(syncer.release)

	first, second := <-results, <-results
	assert.Equal(t, int32(1), syncer.calls.Load())
	assert.Equal(t, first.RunID, second.RunID)
}

func TestSyncRunner_LastStatusWithoutStore(t *testing.T) {
	t.Parallel()
	runner := newTestRunner(&fakeSyncer{}, nil)

	_, err := runner.LastStatus(context.Background())
	assert.ErrorIs(t, err, ErrSyncStatusNotFound)
}
