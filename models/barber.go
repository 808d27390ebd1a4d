package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Barber struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name    string    `gorm:"not null"`
	Photo   string
	ChairID string // weak reference to a chair label, not enforced

	// Creation order is the assignment tie-break order.
	CreatedAt time.Time `gorm:"index"`
}

func (b *Barber) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
