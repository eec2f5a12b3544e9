package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project represents a real-estate development managed by a developer account.
type Project struct {
	UUID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"uuid"`
	Name          string         `gorm:"not null" json:"name"`
	Description   string         `json:"description"`
	Location      string         `json:"location"`
	Phase         string         `json:"phase"`
	LaunchDate    *time.Time     `json:"launch_date"`
	UnitConfigs   datatypes.JSON `json:"unit_configs"`
	PricingRanges datatypes.JSON `json:"pricing_ranges"`
	Amenities     datatypes.JSON `json:"amenities"`
	Images        datatypes.JSON `json:"images"`
	DeveloperUUID uuid.UUID      `gorm:"type:uuid;not null" json:"developer_uuid"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	Documents []Document `gorm:"foreignKey:ProjectUUID" json:"documents,omitempty"`
}
