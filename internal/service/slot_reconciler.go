package service

import (
	"time"

	"doctor-slot-sync/internal/domain/entity"

	"k8s.io/utils/clock"
)

// SlotOutcome describes what Reconcile did with a vendor slot
type SlotOutcome string

const (
	SlotCreated   SlotOutcome = "created"
	SlotUnchanged SlotOutcome = "unchanged"
	SlotUpdated   SlotOutcome = "updated"
)

// SlotReconciler merges a vendor slot into the stored one.
// A stored slot only takes the vendor end time once it is stale.
type SlotReconciler struct {
	clock clock.PassiveClock
}

func NewSlotReconciler(clk clock.PassiveClock) *SlotReconciler {
	return &SlotReconciler{clock: clk}
}

func (r *SlotReconciler) Reconcile(existing *entity.Slot, start, end time.Time, doctorID int64) (*entity.Slot, SlotOutcome) {
	now := r.clock.Now()

	if existing == nil {
		return entity.NewSlot(doctorID, start, end, now), SlotCreated
	}

	if !existing.IsStale(now) {
		return existing, SlotUnchanged
	}

	existing.SetEnd(end)
	return existing, SlotUpdated
}
