package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctor-slot-sync/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSyncStatusNotFound is returned when no run has been recorded yet
var ErrSyncStatusNotFound = errors.New("sync status not found")

const (
	// Redis key holding the status of the last run
	RedisLastRunKey = "sync:run:last"

	// Timeout for individual Redis operations
	redisStatusTimeout = 5 * time.Second
)

// SyncStatusStore keeps track of the last synchronization run
type SyncStatusStore interface {
	SaveStatus(ctx context.Context, status *entity.SyncStatus) error
	LastStatus(ctx context.Context) (*entity.SyncStatus, error)
}

// RedisSyncStatusService stores the last run status as a Redis hash
type RedisSyncStatusService struct {
	redisClient redis.Cmdable
	log         *logrus.Logger
}

func NewRedisSyncStatusService(redisClient redis.Cmdable, log *logrus.Logger) *RedisSyncStatusService {
	return &RedisSyncStatusService{
		redisClient: redisClient,
		log:         log,
	}
}

// SaveStatus replaces the stored status atomically
func (s *RedisSyncStatusService) SaveStatus(ctx context.Context, status *entity.SyncStatus) error {
	ctx, cancel := context.WithTimeout(ctx, redisStatusTimeout)
	defer cancel()

	fields := map[string]any{
		"run_id":     status.RunID,
		"trigger":    status.Trigger,
		"status":     status.Status,
		"started_at": status.StartedAt.UTC().Format(time.RFC3339Nano),
	}
	if status.FinishedAt != nil {
		fields["finished_at"] = status.FinishedAt.UTC().Format(time.RFC3339Nano)
	}
	if status.Error != "" {
		fields["error"] = status.Error
	}

	pipe := s.redisClient.TxPipeline()
	pipe.Del(ctx, RedisLastRunKey)
	pipe.HSet(ctx, RedisLastRunKey, fields)

	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnf("Failed to save sync status for run %s: %+v", status.RunID, err)
		return fmt.Errorf("save sync status for run %s: %w", status.RunID, err)
	}

	return nil
}

func (s *RedisSyncStatusService) LastStatus(ctx context.Context) (*entity.SyncStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, redisStatusTimeout)
	defer cancel()

	values, err := s.redisClient.HGetAll(ctx, RedisLastRunKey).Result()
	if err != nil {
		s.log.Warnf("Failed to get sync status: %+v", err)
		return nil, fmt.Errorf("get sync status: %w", err)
	}
	if len(values) == 0 {
		return nil, ErrSyncStatusNotFound
	}

	return statusFromHash(values)
}

func statusFromHash(values map[string]string) (*entity.SyncStatus, error) {
	status := &entity.SyncStatus{
		RunID:   values["run_id"],
		Trigger: values["trigger"],
		Status:  values["status"],
		Error:   values["error"],
	}

	startedAt, err := time.Parse(time.RFC3339Nano, values["started_at"])
	if err != nil {
		return nil, fmt.Errorf("parse started_at of run %s: %w", status.RunID, err)
	}
	status.StartedAt = startedAt

	if raw, ok := values["finished_at"]; ok {
		finishedAt, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("parse finished_at of run %s: %w", status.RunID, err)
		}
		status.FinishedAt = &finishedAt
	}

	return status, nil
}
