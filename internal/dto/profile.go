package dto

import "granazap/internal/models"

// Profile Request DTOs

// UpdatePhoneRequest represents a phone save. The raw value may carry
// formatting; normalization happens in the service.
type UpdatePhoneRequest struct {
	Phone string `json:"phone" validate:"required,br_phone"`
}

// UpdateProfileRequest represents a profile upsert
type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"omitempty,max=255"`
	Phone    string `json:"phone" validate:"omitempty,br_phone"`
}

// Profile Response DTOs

// ProfileResponse returns the stored profile
type ProfileResponse struct {
	Profile *models.Profile `json:"profile"`
}

// UpdatePhoneResponse confirms the save with the normalized number
type UpdatePhoneResponse struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
