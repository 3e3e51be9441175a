package services

import (
	"context"
	"time"

	"granazap/internal/dto"
	"granazap/internal/models"

	"github.com/google/uuid"
)

// DashboardServiceInterface defines the contract for dashboard operations
type DashboardServiceInterface interface {
	LoadDashboard(ctx context.Context, userID uuid.UUID, query dto.DashboardQuery) (*dto.DashboardResponse, error)
	DeleteTransactions(ctx context.Context, ids []string) error
}

// LimitsServiceInterface defines the contract for spending-limit operations
type LimitsServiceInterface interface {
	GetLimits(ctx context.Context, userID uuid.UUID) (*dto.LimitsResponse, error)
	SaveLimits(ctx context.Context, userID uuid.UUID, drafts map[string]string) (*dto.SaveLimitsResponse, error)
	GetUtilization(ctx context.Context, userID uuid.UUID) ([]models.CategoryUtilization, error)
}

// ProfileServiceInterface defines the contract for profile operations
type ProfileServiceInterface interface {
	GetProfile(userID uuid.UUID) (*models.Profile, error)
	SavePhone(userID uuid.UUID, rawPhone string) (string, error)
	UpsertProfile(userID uuid.UUID, fullName, rawPhone string) (*models.Profile, error)
}

// SubscriptionServiceInterface defines the contract for subscription status
// and checkout URL operations
type SubscriptionServiceInterface interface {
	GetStatus(ctx context.Context, userID uuid.UUID) (*dto.SubscriptionStatusResponse, error)
	CheckoutURL(userID uuid.UUID, email string) string
}

// CheckoutServiceInterface defines the contract for the checkout-start side
// channel
type CheckoutServiceInterface interface {
	StartCheckout(ctx context.Context, req dto.CheckoutStartRequest) string
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, labels map[string]string)
	RecordProcessingTime(operation string, duration time.Duration)
	SetCircuitBreakerState(endpoint string, state int)
}
