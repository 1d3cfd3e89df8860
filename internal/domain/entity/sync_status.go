package entity

import "time"

const (
	SyncRunRunning = "running"
	SyncRunDone    = "done"
	SyncRunFailed  = "failed"
)

// SyncStatus describes the most recent synchronization run
type SyncStatus struct {
	RunID      string     `json:"run_id"`
	Trigger    string     `json:"trigger"`
	Status     string     `json:"status"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Error      string     `json:"error,omitempty"`

	err error
}

// Finish records the end of the run, failed when err is not nil
func (s *SyncStatus) Finish(at time.Time, err error) {
	s.FinishedAt = &at
	s.err = err
	if err != nil {
		s.Status = SyncRunFailed
		s.Error = err.Error()
		return
	}
	s.Status = SyncRunDone
}

// Duration is zero while the run is in progress
func (s *SyncStatus) Duration() time.Duration {
	if s.FinishedAt == nil {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// Err returns the error the run finished with, if it ran in this process
func (s *SyncStatus) Err() error {
	return s.err
}
