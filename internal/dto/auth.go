package dto

import "granazap/internal/models"

// Auth Request DTOs

// SignInRequest represents the password-grant sign-in payload
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RecoverPasswordRequest asks the identity provider to mail a recovery link
type RecoverPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdatePasswordRequest sets a new password for the current session's bearer
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// Auth Response DTOs

// SignInResponse returns the provider session verbatim
type SignInResponse struct {
	Session *models.Session `json:"session"`
}

// MessageResponse is a bare confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
