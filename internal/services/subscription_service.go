package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"granazap/internal/config"
	"granazap/internal/dto"
	"granazap/internal/format"
	"granazap/internal/models"
	"granazap/internal/repositories"
	"granazap/internal/webhooks"

	"github.com/google/uuid"
)

const msgStatusUnavailable = "Não foi possível consultar a assinatura agora."

// SubscriptionService exposes the user-facing subscription view on top of
// the payment backend's raw status, caching each successful lookup locally
type SubscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepositoryInterface
	profileRepo      repositories.ProfileRepositoryInterface
	automation       webhooks.AutomationClientInterface
	checkout         *config.CheckoutConfig
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
	automation webhooks.AutomationClientInterface,
	checkout *config.CheckoutConfig,
) SubscriptionServiceInterface {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		profileRepo:      profileRepo,
		automation:       automation,
		checkout:         checkout,
	}
}

// GetStatus fetches the raw status from the automation backend and maps it
// onto the display status. A failed lookup degrades to Inativa with an
// explanatory message; it never fails the request.
func (s *SubscriptionService) GetStatus(ctx context.Context, userID uuid.UUID) (*dto.SubscriptionStatusResponse, error) {
	payload, err := s.automation.FetchSubscription(ctx, userID)
	if err != nil {
		slog.Warn("subscription status lookup failed",
			"user_id", userID,
			"error", err)
		return &dto.SubscriptionStatusResponse{
			Status:  models.SubscriptionInactive,
			Message: msgStatusUnavailable,
		}, nil
	}

	if err := s.subscriptionRepo.UpsertStatus(userID, payload.Status); err != nil {
		slog.Warn("failed to cache subscription status", "user_id", userID, "error", err)
	}

	response := &dto.SubscriptionStatusResponse{
		Status: models.DisplayStatus(payload.Status),
	}
	if response.Status == models.SubscriptionActive && payload.Period != "" {
		response.Period = format.LongDate(payload.Period)
	}
	return response, nil
}

// CheckoutURL builds the personalized payment page URL. Name, email and
// phone prefill the gateway form; unknown values are simply omitted.
func (s *SubscriptionService) CheckoutURL(userID uuid.UUID, email string) string {
	params := url.Values{}

	if email != "" {
		params.Set("em", email)
	}

	profile, err := s.profileRepo.GetByID(userID)
	if err == nil {
		if profile.FullName != "" {
			params.Set("fn", profile.FullName)
		}
		if profile.Phone != "" {
			params.Set("ph", profile.Phone)
		}
	}

	if len(params) == 0 {
		return s.checkout.PaymentURL
	}
	return fmt.Sprintf("%s?%s", s.checkout.PaymentURL, params.Encode())
}
