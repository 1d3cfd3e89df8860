package entity

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// SyncFailure is a reported failure of a doctor's slot synchronization
type SyncFailure struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  int64     `gorm:"not null;index" json:"doctor_id"`
	Message   string    `gorm:"type:varchar(255);not null" json:"message"`
	Context   JSON      `gorm:"type:jsonb" json:"context,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (SyncFailure) TableName() string {
	return "sync_failures"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Merge returns a copy of j with the entries of other added on top
func (j JSON) Merge(other JSON) JSON {
	merged := make(JSON, len(j)+len(other))
	for k, v := range j {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}
