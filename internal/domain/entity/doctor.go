package entity

import "time"

// Doctor is the local copy of a doctor listed by the vendor API
type Doctor struct {
	ID        string    `gorm:"type:varchar(32);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	HasError  bool      `gorm:"column:has_error;not null;default:false;index" json:"has_error"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// NewDoctor creates a doctor with a cleared error flag
func NewDoctor(id, name string) *Doctor {
	return &Doctor{
		ID:   id,
		Name: name,
	}
}

// MarkError flags that the most recent slot fetch failed
func (d *Doctor) MarkError() {
	d.HasError = true
}

// ClearError resets the slot fetch error flag
func (d *Doctor) ClearError() {
	d.HasError = false
}
