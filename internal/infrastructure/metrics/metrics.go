package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "doctor_slot_sync"

// SyncMetrics holds the collectors of the synchronization workflow.
// A nil *SyncMetrics is valid and records nothing.
type SyncMetrics struct {
	runsTotal         *prometheus.CounterVec
	runDuration       prometheus.Histogram
	doctorsSynced     prometheus.Counter
	slotFetchFailures prometheus.Counter
	slotsReconciled   *prometheus.CounterVec
}

func NewSyncMetrics(reg prometheus.Registerer) *SyncMetrics {
	factory := promauto.With(reg)

	return &SyncMetrics{
		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Synchronization runs by final status.",
		}, []string{"status"}),
		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of synchronization runs.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
		doctorsSynced: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "doctors_synced_total",
			Help:      "Doctors upserted from the vendor roster.",
		}),
		slotFetchFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_fetch_failures_total",
			Help:      "Per-doctor slot fetches that could not be fetched or decoded.",
		}),
		slotsReconciled: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slots_reconciled_total",
			Help:      "Reconciled slots by outcome.",
		}, []string{"outcome"}),
	}
}

func (m *SyncMetrics) ObserveRun(status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.runsTotal.WithLabelValues(status).Inc()
	m.runDuration.Observe(duration.Seconds())
}

func (m *SyncMetrics) DoctorSynced() {
	if m == nil {
		return
	}
	m.doctorsSynced.Inc()
}

func (m *SyncMetrics) SlotFetchFailed() {
	if m == nil {
		return
	}
	m.slotFetchFailures.Inc()
}

func (m *SyncMetrics) SlotReconciled(outcome string) {
	if m == nil {
		return
	}
	m.slotsReconciled.WithLabelValues(outcome).Inc()
}
