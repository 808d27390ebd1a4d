package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Salon struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Name    string    `gorm:"not null"`
	Address string
	Slug    string `gorm:"uniqueIndex;not null"` // URL-safe identifier (e.g. /le-gentleman)

	Services []Service    `gorm:"foreignKey:SalonID"`
	Barbers  []Barber     `gorm:"foreignKey:SalonID"`
	Chairs   []Chair      `gorm:"foreignKey:SalonID"`
	Queue    []QueueEntry `gorm:"foreignKey:SalonID"`
}

func (s *Salon) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

type Chair struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name    string    `gorm:"not null"`
}

func (c *Chair) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
