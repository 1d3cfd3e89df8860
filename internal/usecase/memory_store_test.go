package usecase

import (
	"sort"
	"sync"
	"time"

	"doctor-slot-sync/internal/domain/entity"

	"gorm.io/gorm"
)

// memoryDoctorRepository and memorySlotRepository keep rows by value, the way a database would
type memoryDoctorRepository struct {
	mu      sync.Mutex
	doctors map[string]entity.Doctor
	saves   int
}

func newMemoryDoctorRepository() *memoryDoctorRepository {
	return &memoryDoctorRepository{doctors: make(map[string]entity.Doctor)}
}

func (r *memoryDoctorRepository) FindByID(_ *gorm.DB, id string) (*entity.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doctor, ok := r.doctors[id]
	if !ok {
		return nil, nil
	}
	return &doctor, nil
}

func (r *memoryDoctorRepository) FindAll(_ *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var doctors []entity.Doctor
	for _, doctor := range r.doctors {
		if filter != nil && filter.HasError != nil && doctor.HasError != *filter.HasError {
			continue
		}
		doctors = append(doctors, doctor)
	}
	sort.Slice(doctors, func(i, j int) bool { return doctors[i].ID < doctors[j].ID })
	return doctors, nil
}

func (r *memoryDoctorRepository) Save(_ *gorm.DB, doctor *entity.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doctors[doctor.ID] = *doctor
	r.saves++
	return nil
}

func (r *memoryDoctorRepository) get(id string) (entity.Doctor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doctor, ok := r.doctors[id]
	return doctor, ok
}

type slotIdentity struct {
	doctorID int64
	start    int64
}

type memorySlotRepository struct {
	mu     sync.Mutex
	slots  map[slotIdentity]entity.Slot
	nextID int64
}

func newMemorySlotRepository() *memorySlotRepository {
	return &memorySlotRepository{slots: make(map[slotIdentity]entity.Slot)}
}

func (r *memorySlotRepository) FindByDoctorAndStart(_ *gorm.DB, doctorID int64, start time.Time) (*entity.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[slotIdentity{doctorID, start.UnixNano()}]
	if !ok {
		return nil, nil
	}
	return &slot, nil
}

func (r *memorySlotRepository) FindByDoctorID(_ *gorm.DB, doctorID int64) ([]entity.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var slots []entity.Slot
	for key, slot := range r.slots {
		if key.doctorID == doctorID {
			slots = append(slots, slot)
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Start.Before(slots[j].Start) })
	return slots, nil
}

func (r *memorySlotRepository) Save(_ *gorm.DB, slot *entity.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := slotIdentity{slot.DoctorID, slot.Start.UnixNano()}
	if slot.ID == 0 {
		if _, exists := r.slots[key]; exists {
			return nil
		}
		r.nextID++
		slot.ID = r.nextID
	}
	r.slots[key] = *slot
	return nil
}

func (r *memorySlotRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}
