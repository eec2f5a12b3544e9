package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog records an administrative action. Resource and Meta are free-form
// JSON blobs ({ type, id } and arbitrary context respectively).
type AuditLog struct {
	UUID      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"uuid"`
	ActorUUID *uuid.UUID     `gorm:"type:uuid" json:"actor_uuid"`
	Action    string         `gorm:"not null" json:"action"`
	Resource  datatypes.JSON `json:"resource"`
	Meta      datatypes.JSON `json:"meta"`
	CreatedAt time.Time      `json:"created_at"`
}
