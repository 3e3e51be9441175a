package models

import (
	"time"

	"github.com/google/uuid"
)

// Raw subscription statuses as reported by the payment backend
const (
	SubscriptionStatusPaid    = "paid"
	SubscriptionStatusPending = "pending"
)

// Display statuses shown to the user
const (
	SubscriptionActive   = "Ativa"
	SubscriptionPending  = "Pendente"
	SubscriptionInactive = "Inativa"
)

// Subscription is the locally cached snapshot of a user's subscription state
type Subscription struct {
	UserID    uuid.UUID  `gorm:"type:uuid;primary_key" json:"user_id"`
	Status    string     `gorm:"type:varchar(20);not null" json:"subscription_status"`
	ExpiresAt *time.Time `json:"subscription_expires_at,omitempty"`
	Plan      string     `gorm:"type:varchar(50)" json:"plan,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}

// TableName overrides the default gorm table name
func (Subscription) TableName() string {
	return "subscriptions"
}

// DisplayStatus maps a raw payment status onto the user-facing status:
// paid is active, pending stays pending, everything else is inactive.
func DisplayStatus(raw string) string {
	switch raw {
	case SubscriptionStatusPaid:
		return SubscriptionActive
	case SubscriptionStatusPending:
		return SubscriptionPending
	default:
		return SubscriptionInactive
	}
}
