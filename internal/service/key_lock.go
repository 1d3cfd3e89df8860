package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

const (
	// Interval for cleaning up stale slot locks
	lockCleanupInterval = 10 * time.Minute

	// How long a lock must be unused before cleanup
	lockStaleThreshold = 10 * time.Minute
)

// SlotLocker serializes writes for the same (doctor, start) key within the process.
// Unused locks are dropped by a background loop; call Stop during shutdown.
type SlotLocker struct {
	clock clock.WithTicker
	log   *logrus.Logger

	locks sync.Map // map[slotKey]*mutexWithTimestamp

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

type slotKey struct {
	doctorID int64
	start    int64
}

// mutexWithTimestamp tracks mutex usage for cleanup
type mutexWithTimestamp struct {
	mu       sync.Mutex
	lastUsed atomic.Int64 // unix nanoseconds
}

func NewSlotLocker(clk clock.WithTicker, log *logrus.Logger) *SlotLocker {
	l := &SlotLocker{
		clock:    clk,
		log:      log,
		stopChan: make(chan struct{}),
	}

	l.wg.Add(1)
	go l.cleanupLoop()

	return l
}

// Lock blocks until the key is free and returns the unlock func
func (l *SlotLocker) Lock(doctorID int64, start time.Time) func() {
	key := slotKey{doctorID: doctorID, start: start.UnixNano()}

	for {
		value, _ := l.locks.LoadOrStore(key, &mutexWithTimestamp{})
		mt := value.(*mutexWithTimestamp)
		mt.mu.Lock()

		// the cleanup loop may have dropped this mutex while we waited for it
		if current, ok := l.locks.Load(key); ok && current == mt {
			mt.lastUsed.Store(l.clock.Now().UnixNano())
			return mt.mu.Unlock
		}
		mt.mu.Unlock()
	}
}

// Stop gracefully shuts down the cleanup loop. Safe to call multiple times.
func (l *SlotLocker) Stop() {
	if l.stopped.CompareAndSwap(false, true) {
		close(l.stopChan)
		l.wg.Wait()
		l.log.Info("SlotLocker stopped")
	}
}

func (l *SlotLocker) cleanupLoop() {
	defer l.wg.Done()

	ticker := l.clock.NewTicker(lockCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-ticker.C():
			l.cleanupStale()
		}
	}
}

// cleanupStale removes unused locks, checking lastUsed while holding the lock
func (l *SlotLocker) cleanupStale() int {
	cutoff := l.clock.Now().Add(-lockStaleThreshold).UnixNano()
	var cleaned int

	l.locks.Range(func(key, value any) bool {
		mt, ok := value.(*mutexWithTimestamp)
		if !ok {
			return true
		}

		if mt.mu.TryLock() {
			if mt.lastUsed.Load() < cutoff {
				l.locks.Delete(key)
				cleaned++
			}
			mt.mu.Unlock()
		}
		return true
	})

	if cleaned > 0 {
		l.log.Debugf("Cleaned up %d stale slot locks", cleaned)
	}
	return cleaned
}
