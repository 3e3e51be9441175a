package handlers

import (
	"errors"
	"net/http"

	"granazap/internal/dto"
	apierrors "granazap/internal/errors"
	"granazap/internal/services"

	"github.com/labstack/echo/v4"
)

// LimitsHandler handles spending-limit endpoints
type LimitsHandler struct {
	limitsService services.LimitsServiceInterface
}

// NewLimitsHandler creates a new limits handler
func NewLimitsHandler(limitsService services.LimitsServiceInterface) *LimitsHandler {
	return &LimitsHandler{
		limitsService: limitsService,
	}
}

// GetLimits lists the user's saved limits
// @Summary List limits
// @Description Return the saved per-category limits, distinguishing "none saved" from failure
// @Tags Limits
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.LimitsResponse "Saved limits"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid session"
// @Router /limits [get]
func (h *LimitsHandler) GetLimits(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	response, err := h.limitsService.GetLimits(c.Request().Context(), userID)
	if err != nil {
		return sendUpstreamError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// SaveLimits validates and saves the limit drafts
// @Summary Save limits
// @Description Parse the drafts, drop non-positive entries, submit the rest upstream and persist locally. An all-blank form is a notice, not an error.
// @Tags Limits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SaveLimitsRequest true "Limit drafts keyed by category"
// @Success 200 {object} dto.SaveLimitsResponse "Limits saved, or nothing to save"
// @Failure 400 {object} errors.ErrorResponse "LIMIT_001 - Invalid value, LIMIT_002 - Unknown category"
// @Router /limits [post]
func (h *LimitsHandler) SaveLimits(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.SaveLimitsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	response, err := h.limitsService.SaveLimits(c.Request().Context(), userID, req.Limits)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidLimitDraft):
			return SendError(c, apierrors.LimitInvalidAmount, apierrors.WithDetails(err.Error()))
		case errors.Is(err, services.ErrInvalidCategory):
			return SendError(c, apierrors.LimitInvalidCategory, apierrors.WithDetails(err.Error()))
		default:
			return sendUpstreamError(c, err)
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetUtilization pairs each saved limit with the current period's spend
// @Summary Limit utilization
// @Description Return raw percent, clamped bar width and the over-limit flag per category
// @Tags Limits
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UtilizationResponse "Utilization per limited category"
// @Router /limits/utilization [get]
func (h *LimitsHandler) GetUtilization(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	items, err := h.limitsService.GetUtilization(c.Request().Context(), userID)
	if err != nil {
		return sendUpstreamError(c, err)
	}

	return c.JSON(http.StatusOK, dto.UtilizationResponse{Items: items})
}
