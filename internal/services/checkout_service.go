package services

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"granazap/internal/config"
	"granazap/internal/dto"
	"granazap/internal/webhooks"
)

// crmTimeout bounds the fire-and-forget CRM upsert after the caller's
// request has already been answered
const crmTimeout = 10 * time.Second

// CheckoutService handles the checkout-start side channel: registering the
// lead with CRM and building the redirect URL. CRM failures are logged and
// swallowed; they never block the redirect.
type CheckoutService struct {
	automation webhooks.AutomationClientInterface
	checkout   *config.CheckoutConfig
	metrics    MetricsRecorderInterface
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(automation webhooks.AutomationClientInterface, checkout *config.CheckoutConfig, metrics MetricsRecorderInterface) CheckoutServiceInterface {
	return &CheckoutService{
		automation: automation,
		checkout:   checkout,
		metrics:    metrics,
	}
}

// StartCheckout registers the lead in the background and returns the
// personalized payment URL immediately
func (s *CheckoutService) StartCheckout(ctx context.Context, req dto.CheckoutStartRequest) string {
	plan := req.Plan
	if plan == "" {
		plan = s.checkout.DefaultPlan
	}

	contact := webhooks.CRMContact{
		Email:  req.Email,
		Name:   req.Name,
		Phone:  req.Phone,
		Source: req.Source,
		Plan:   plan,
	}

	go func() {
		// Detached from the request context: the redirect has already been
		// issued when this runs
		crmCtx, cancel := context.WithTimeout(context.Background(), crmTimeout)
		defer cancel()

		if err := s.automation.UpsertCRMContact(crmCtx, contact); err != nil {
			slog.Warn("crm contact upsert failed", "email", contact.Email, "error", err)
		}
	}()

	s.metrics.IncrementCounter("checkout_started", nil)

	params := url.Values{}
	if req.Name != "" {
		params.Set("fn", req.Name)
	}
	if req.Email != "" {
		params.Set("em", req.Email)
	}
	if req.Phone != "" {
		params.Set("ph", req.Phone)
	}

	if len(params) == 0 {
		return s.checkout.PaymentURL
	}
	return s.checkout.PaymentURL + "?" + params.Encode()
}
