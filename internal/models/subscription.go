package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionTrialing SubscriptionStatus = "trialing"
)

// Subscription tracks a user's billing plan. Quota holds
// { chatCredits, documentUploads } and is not enforced by the chat flow.
type Subscription struct {
	UUID                 uuid.UUID          `gorm:"type:uuid;primaryKey" json:"uuid"`
	UserUUID             uuid.UUID          `gorm:"type:uuid;not null" json:"user_uuid"`
	StripeSubscriptionID string             `json:"stripe_subscription_id"`
	Plan                 string             `gorm:"not null" json:"plan"`
	Quota                datatypes.JSON     `json:"quota"`
	Status               SubscriptionStatus `gorm:"default:'active'" json:"status"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}
