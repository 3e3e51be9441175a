package handlers

import (
	"net/http"

	"granazap/internal/dto"
	apierrors "granazap/internal/errors"
	"granazap/internal/services"

	"github.com/labstack/echo/v4"
)

// SubscriptionHandler handles subscription status and checkout endpoints
type SubscriptionHandler struct {
	subscriptionService services.SubscriptionServiceInterface
	checkoutService     services.CheckoutServiceInterface
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptionService services.SubscriptionServiceInterface, checkoutService services.CheckoutServiceInterface) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		checkoutService:     checkoutService,
	}
}

// GetStatus returns the user-facing subscription status
// @Summary Subscription status
// @Description Map the payment backend's raw status onto Ativa/Pendente/Inativa; failures degrade to Inativa
// @Tags Subscription
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SubscriptionStatusResponse "Display status"
// @Router /subscription [get]
func (h *SubscriptionHandler) GetStatus(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	response, err := h.subscriptionService.GetStatus(c.Request().Context(), userID)
	if err != nil {
		return sendUpstreamError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// GetCheckoutURL returns the personalized payment page URL for the session
// @Summary Checkout URL
// @Description Build the payment URL with the profile's name, email and phone prefilled
// @Tags Subscription
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.CheckoutStartResponse "Payment page URL"
// @Router /subscription/checkout-url [get]
func (h *SubscriptionHandler) GetCheckoutURL(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	checkoutURL := h.subscriptionService.CheckoutURL(userID, getEmailFromContext(c))
	return c.JSON(http.StatusOK, dto.CheckoutStartResponse{CheckoutURL: checkoutURL})
}
