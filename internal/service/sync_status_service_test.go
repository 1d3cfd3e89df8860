package service

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"doctor-slot-sync/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   map[string]string
		expected *entity.SyncStatus
		wantErr  bool
	}{
		{
			name: "running",
			values: map[string]string{
				"run_id":     "run-1",
				"trigger":    "cron",
				"status":     entity.SyncRunRunning,
				"started_at": "2026-03-10T12:00:00Z",
			},
			expected: &entity.SyncStatus{
				RunID:     "run-1",
				Trigger:   "cron",
				Status:    entity.SyncRunRunning,
				StartedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "failed",
			values: map[string]string{
				"run_id":      "run-2",
				"trigger":     "http",
				"status":      entity.SyncRunFailed,
				"started_at":  "2026-03-10T12:00:00Z",
				"finished_at": "2026-03-10T12:00:03.5Z",
				"error":       "vendor down",
			},
			expected: &entity.SyncStatus{
				RunID:      "run-2",
				Trigger:    "http",
				Status:     entity.SyncRunFailed,
				StartedAt:  time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
				FinishedAt: func() *time.Time { ts := time.Date(2026, 3, 10, 12, 0, 3, 500000000, time.UTC); return &ts }(),
				Error:      "vendor down",
			},
		},
		{
			name:    "corrupt started_at",
			values:  map[string]string{"run_id": "run-3", "started_at": "yesterday"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status, err := statusFromHash(tt.values)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

// TestRedisSyncStatusService_RoundTrip needs a disposable Redis, e.g. REDIS_TEST_ADDR=localhost:6379
func TestRedisSyncStatusService_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	ctx := context.Background()
	require.NoError(t, client.Del(ctx, RedisLastRunKey).Err())

	log, _ := test.NewNullLogger()
	svc := NewRedisSyncStatusService(client, log)

	_, err := svc.LastStatus(ctx)
	assert.True(t, errors.Is(err, ErrSyncStatusNotFound))

	status := &entity.SyncStatus{
		RunID:     "run-1",
		Trigger:   "cron",
		Status:    entity.SyncRunFailed,
		StartedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		Error:     "boom",
	}
	require.NoError(t, svc.SaveStatus(ctx, status))

	status.Finish(status.StartedAt.Add(time.Second), nil)
	status.Error = ""
	require.NoError(t, svc.SaveStatus(ctx, status))

	got, err := svc.LastStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.SyncRunDone, got.Status)
	assert.Empty(t, got.Error, "fields of the previous run are removed")
	require.NotNil(t, got.FinishedAt)
	assert.Equal(t, time.Second, got.Duration())
}
