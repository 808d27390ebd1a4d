package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
	RoleBarber     = "BARBER"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Username string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"` // bcrypt hash
	Role     string    `gorm:"type:varchar(20);not null"`

	// SalonID is required for ADMIN and BARBER, nil for SUPER_ADMIN.
	SalonID *uuid.UUID `gorm:"type:uuid;index"`

	LastLogin *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
