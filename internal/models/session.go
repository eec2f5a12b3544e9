package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is an opaque login token handed to the browser as a cookie.
type Session struct {
	Token     string    `gorm:"primaryKey" json:"-"`
	UserUUID  uuid.UUID `gorm:"type:uuid;not null" json:"user_uuid"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
