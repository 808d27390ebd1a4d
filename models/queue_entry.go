package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QueueStatus string

const (
	StatusWaiting    QueueStatus = "WAITING"
	StatusInProgress QueueStatus = "IN_PROGRESS"
	StatusCompleted  QueueStatus = "COMPLETED"
	StatusCancelled  QueueStatus = "CANCELLED"
)

func (s QueueStatus) Valid() bool {
	switch s {
	case StatusWaiting, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Active entries are the ones counted in load and position calculations.
func (s QueueStatus) Active() bool {
	return s == StatusWaiting || s == StatusInProgress
}

// Custom JSON column type for the ordered list of requested service ids
type UUIDList []uuid.UUID

func (l UUIDList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *UUIDList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("type assertion to []byte failed")
}

type QueueEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID     uuid.UUID `gorm:"type:uuid;index;not null"`
	ClientID    uuid.UUID `gorm:"type:uuid;not null"`
	ClientName  string    `gorm:"not null"`
	ClientPhone string
	BarberID    uuid.UUID   `gorm:"type:uuid;index;not null"`
	ServiceIDs  UUIDList    `gorm:"type:jsonb"`
	Status      QueueStatus `gorm:"type:varchar(20);not null"`

	// Position is a snapshot taken when the entry is created and is never
	// recomputed afterwards. The live position must always be derived from
	// the current active sub-queue; this value is informational only.
	Position int

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (q *QueueEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return
}
