package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleDeveloper UserRole = "developer"
	UserRoleBroker    UserRole = "broker"
	UserRoleAdmin     UserRole = "admin"
)

// User represents the database model for an account holder.
type User struct {
	UUID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"uuid"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Image        string    `json:"image"`
	Role         UserRole  `gorm:"default:'developer'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
