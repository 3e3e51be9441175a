package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds account details keyed by the identity provider's user id.
// Phone uniqueness is enforced by the database; the repository translates the
// unique violation into ErrPhoneInUse.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName  string    `gorm:"type:varchar(255)" json:"full_name,omitempty"`
	Phone     string    `gorm:"type:varchar(20);uniqueIndex" json:"phone,omitempty"`
	Phone2    string    `gorm:"column:phone_2;type:varchar(20)" json:"phone_2,omitempty"`
	Plan      string    `gorm:"type:varchar(50)" json:"plan,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName overrides the default gorm table name
func (Profile) TableName() string {
	return "profiles"
}
