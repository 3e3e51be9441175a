package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryLimit is a user-owned spending limit for one category. One row per
// (user, category); the category column always holds a value from the closed
// category set.
type CategoryLimit struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_category_limits_user_category" json:"user_id"`
	Category  string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_category_limits_user_category" json:"categoria"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"limite"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate assigns the row id
func (l *CategoryLimit) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName overrides the default gorm table name
func (CategoryLimit) TableName() string {
	return "category_limits"
}

// CategorySpend is the externally computed spend total for one category in
// the current period
type CategorySpend struct {
	Category string          `json:"categoria"`
	Spent    decimal.Decimal `json:"gasto"`
}

// CategoryUtilization pairs a limit with the period spend for that category.
// Percent carries the raw (unclamped) ratio so a blown limit reads 150, while
// BarWidth is clamped to [0,100] for rendering.
type CategoryUtilization struct {
	Category  string          `json:"categoria"`
	Limit     decimal.Decimal `json:"limite"`
	Spent     decimal.Decimal `json:"gasto"`
	Percent   int             `json:"percentual"`
	BarWidth  int             `json:"largura_barra"`
	OverLimit bool            `json:"limite_excedido"`
}
