package entity

import "time"

// SlotStaleThreshold is how long a slot keeps its end time before a re-sync may overwrite it
const SlotStaleThreshold = 5 * time.Minute

// Slot is an appointment window of a doctor.
// (DoctorID, Start) identifies a slot; both are fixed once the slot is created.
type Slot struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  int64     `gorm:"not null;uniqueIndex:idx_slots_doctor_start" json:"doctor_id"`
	Start     time.Time `gorm:"column:start_at;not null;uniqueIndex:idx_slots_doctor_start" json:"start"`
	End       time.Time `gorm:"column:end_at;not null" json:"end"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Slot) TableName() string {
	return "slots"
}

// NewSlot creates a slot stamped with the given creation time
func NewSlot(doctorID int64, start, end, createdAt time.Time) *Slot {
	return &Slot{
		DoctorID:  doctorID,
		Start:     start,
		End:       end,
		CreatedAt: createdAt,
	}
}

// IsStale reports whether the slot is older than SlotStaleThreshold at now
func (s *Slot) IsStale(now time.Time) bool {
	return now.Sub(s.CreatedAt) > SlotStaleThreshold
}

// SetEnd overwrites the end of the appointment window
func (s *Slot) SetEnd(end time.Time) {
	s.End = end
}
