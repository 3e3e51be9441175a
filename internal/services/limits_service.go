package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"granazap/internal/dto"
	"granazap/internal/models"
	"granazap/internal/repositories"
	"granazap/internal/webhooks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidLimitDraft = errors.New("limit value must be numeric")
	ErrInvalidCategory   = errors.New("unknown spending category")
)

var limitDraftPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

const (
	msgNoLimitsSaved = "Nenhum limite salvo ainda."
	msgNothingToSave = "Nenhum limite foi definido. Nada para salvar."
)

// LimitsService manages per-category spending limits. The local table is the
// canonical read; the limits webhook is consulted as a fallback for users
// whose limits were saved before this service persisted them.
type LimitsService struct {
	limitRepo  repositories.LimitRepositoryInterface
	automation webhooks.AutomationClientInterface
	metrics    MetricsRecorderInterface
}

// NewLimitsService creates a new limits service
func NewLimitsService(limitRepo repositories.LimitRepositoryInterface, automation webhooks.AutomationClientInterface, metrics MetricsRecorderInterface) LimitsServiceInterface {
	return &LimitsService{
		limitRepo:  limitRepo,
		automation: automation,
		metrics:    metrics,
	}
}

// GetLimits returns the user's saved limits, distinguishing "none saved yet"
// from a load failure
func (s *LimitsService) GetLimits(ctx context.Context, userID uuid.UUID) (*dto.LimitsResponse, error) {
	stored, err := s.limitRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("load limits: %w", err)
	}

	items := make([]dto.LimitItem, 0, len(stored))
	for _, limit := range stored {
		items = append(items, dto.LimitItem{Category: limit.Category, Amount: limit.Amount})
	}

	if len(items) == 0 {
		remote, err := s.automation.FetchLimits(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load limits: %w", err)
		}
		for _, entry := range remote {
			if !models.IsValidCategory(entry.Category) {
				continue
			}
			items = append(items, dto.LimitItem{Category: entry.Category, Amount: entry.Limit.Decimal})
		}
	}

	response := &dto.LimitsResponse{Limits: items}
	if len(items) == 0 {
		response.Message = msgNoLimitsSaved
	}
	return response, nil
}

// SaveLimits parses the drafts, drops non-positive entries, submits the rest
// to the write webhook and persists the committed values locally
func (s *LimitsService) SaveLimits(ctx context.Context, userID uuid.UUID, drafts map[string]string) (*dto.SaveLimitsResponse, error) {
	committed := make([]models.CategoryLimit, 0, len(drafts))
	values := make([]webhooks.LimitValue, 0, len(drafts))

	// Iterate the closed category set so the output order is stable
	for _, category := range models.AllCategories() {
		draft, ok := drafts[category]
		if !ok || draft == "" {
			continue
		}

		if !limitDraftPattern.MatchString(draft) {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidLimitDraft, category, draft)
		}

		amount, err := decimal.NewFromString(draft)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidLimitDraft, category, draft)
		}
		if !amount.IsPositive() {
			continue
		}

		committed = append(committed, models.CategoryLimit{
			UserID:   userID,
			Category: category,
			Amount:   amount,
		})
		values = append(values, webhooks.LimitValue{
			Category: category,
			Value:    amount.InexactFloat64(),
		})
	}

	for category := range drafts {
		if !models.IsValidCategory(category) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
		}
	}

	// An all-blank form is a notice, not an error: nothing goes upstream
	// and nothing is persisted
	if len(values) == 0 {
		return &dto.SaveLimitsResponse{Message: msgNothingToSave}, nil
	}

	if err := s.automation.SaveLimits(ctx, userID, values); err != nil {
		return nil, fmt.Errorf("save limits: %w", err)
	}

	if err := s.limitRepo.ReplaceForUser(userID, committed); err != nil {
		return nil, fmt.Errorf("persist limits: %w", err)
	}

	s.metrics.IncrementCounter("limits_saved", nil)
	return &dto.SaveLimitsResponse{
		Saved:   len(values),
		Message: "Limites salvos com sucesso.",
	}, nil
}

// GetUtilization pairs each saved limit with the current period's spend.
// Percent carries the raw ratio (a blown limit reads 150); bar width is
// clamped to [0,100]; a zero limit reads 0% and never flags.
func (s *LimitsService) GetUtilization(ctx context.Context, userID uuid.UUID) ([]models.CategoryUtilization, error) {
	stored, err := s.limitRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("load limits: %w", err)
	}
	if len(stored) == 0 {
		return []models.CategoryUtilization{}, nil
	}

	spend, err := s.automation.FetchSpendByCategory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load spend: %w", err)
	}

	spentBy := make(map[string]decimal.Decimal, len(spend))
	for _, entry := range spend {
		spentBy[models.BucketCategory(entry.Category)] = entry.Spent
	}

	utilization := make([]models.CategoryUtilization, 0, len(stored))
	for _, limit := range stored {
		spent := spentBy[limit.Category]
		utilization = append(utilization, buildUtilization(limit, spent))
	}
	return utilization, nil
}

func buildUtilization(limit models.CategoryLimit, spent decimal.Decimal) models.CategoryUtilization {
	u := models.CategoryUtilization{
		Category: limit.Category,
		Limit:    limit.Amount,
		Spent:    spent,
	}

	if !limit.Amount.IsPositive() {
		return u
	}

	raw := int(spent.Div(limit.Amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	u.Percent = raw
	u.OverLimit = raw >= 100

	switch {
	case raw < 0:
		u.BarWidth = 0
	case raw > 100:
		u.BarWidth = 100
	default:
		u.BarWidth = raw
	}
	return u
}
