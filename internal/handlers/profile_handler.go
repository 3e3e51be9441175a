package handlers

import (
	"errors"
	"net/http"

	"granazap/internal/dto"
	apierrors "granazap/internal/errors"
	"granazap/internal/services"

	"github.com/labstack/echo/v4"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	profileService services.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService services.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile returns the stored profile
// @Summary Get profile
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ProfileResponse "Stored profile"
// @Failure 404 {object} errors.ErrorResponse "PROFILE_001 - Profile not found"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileMissing) {
			return SendError(c, apierrors.ProfileNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ProfileResponse{Profile: profile})
}

// SavePhone normalizes and stores the user's WhatsApp number
// @Summary Save phone
// @Description Normalize a Brazilian phone to the stored 12-digit form and save it
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdatePhoneRequest true "Raw phone"
// @Success 200 {object} dto.UpdatePhoneResponse "Normalized phone saved"
// @Failure 400 {object} errors.ErrorResponse "PROFILE_003 - Phone does not normalize"
// @Failure 409 {object} errors.ErrorResponse "PROFILE_002 - Phone linked to another account"
// @Router /profile/phone [put]
func (h *ProfileHandler) SavePhone(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.UpdatePhoneRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	phone, err := h.profileService.SavePhone(userID, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPhone):
			return SendError(c, apierrors.ProfileInvalidPhone)
		case errors.Is(err, services.ErrPhoneConflict):
			return SendError(c, apierrors.ProfilePhoneInUse)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.UpdatePhoneResponse{
		Phone:   phone,
		Message: "Telefone salvo com sucesso.",
	})
}

// UpdateProfile stores name and phone in one write
// @Summary Update profile
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.ProfileResponse "Updated profile"
// @Failure 409 {object} errors.ErrorResponse "PROFILE_002 - Phone linked to another account"
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.profileService.UpsertProfile(userID, req.FullName, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPhone):
			return SendError(c, apierrors.ProfileInvalidPhone)
		case errors.Is(err, services.ErrPhoneConflict):
			return SendError(c, apierrors.ProfilePhoneInUse)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.ProfileResponse{Profile: profile})
}
