package handlers

import (
	"net/http"

	"granazap/internal/dto"
	apierrors "granazap/internal/errors"
	"granazap/internal/services"

	"github.com/labstack/echo/v4"
)

// CheckoutHandler handles the public checkout-start side channel
type CheckoutHandler struct {
	checkoutService services.CheckoutServiceInterface
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService services.CheckoutServiceInterface) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// StartCheckout registers the lead and returns the payment redirect URL
// @Summary Start checkout
// @Description Upsert the CRM contact fire-and-forget and return the personalized payment URL
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body dto.CheckoutStartRequest true "Lead details"
// @Success 200 {object} dto.CheckoutStartResponse "Payment page URL"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid lead payload"
// @Router /checkout/start [post]
func (h *CheckoutHandler) StartCheckout(c echo.Context) error {
	var req dto.CheckoutStartRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	checkoutURL := h.checkoutService.StartCheckout(c.Request().Context(), req)
	return c.JSON(http.StatusOK, dto.CheckoutStartResponse{CheckoutURL: checkoutURL})
}
