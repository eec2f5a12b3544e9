package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Conversation is a thread of messages owned by one user, optionally scoped
// to a project. UpdatedAt is refreshed on every message insert.
type Conversation struct {
	UUID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"uuid"`
	UserUUID    uuid.UUID  `gorm:"type:uuid;not null" json:"user_uuid"`
	ProjectUUID *uuid.UUID `gorm:"type:uuid" json:"project_uuid"`
	Title       string     `json:"title"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Message is one turn of a conversation, immutable once stored.
type Message struct {
	UUID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"uuid"`
	ConversationUUID uuid.UUID      `gorm:"type:uuid;not null" json:"conversation_uuid"`
	Role             Role           `gorm:"not null" json:"role"`
	Content          string         `gorm:"not null" json:"content"`
	Citations        datatypes.JSON `json:"citations"`
	CreatedAt        time.Time      `json:"created_at"`
}
