package dto

import (
	"granazap/internal/models"

	"github.com/shopspring/decimal"
)

// Limits Request DTOs

// SaveLimitsRequest carries the limit drafts keyed by category. Values are
// numeric strings straight from the form; empty or zero drafts mean no limit
// for that category.
type SaveLimitsRequest struct {
	Limits map[string]string `json:"limites" validate:"required"`
}

// Limits Response DTOs

// LimitItem is one saved limit
type LimitItem struct {
	Category string          `json:"categoria"`
	Amount   decimal.Decimal `json:"limite"`
}

// LimitsResponse lists the user's saved limits. Message distinguishes "no
// limits saved yet" from an actual load failure.
type LimitsResponse struct {
	Limits  []LimitItem `json:"limites"`
	Message string      `json:"message,omitempty"`
}

// SaveLimitsResponse confirms a save
type SaveLimitsResponse struct {
	Saved   int    `json:"salvos"`
	Message string `json:"message"`
}

// UtilizationResponse pairs each saved limit with the period spend
type UtilizationResponse struct {
	Items []models.CategoryUtilization `json:"limites"`
}
