package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"granazap/internal/analytics"
	"granazap/internal/charts"
	"granazap/internal/dto"
	"granazap/internal/models"
	"granazap/internal/webhooks"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrNoTransactionIDs = errors.New("no transaction ids provided")
)

const (
	// The automation backend stores timestamps in América/São Paulo local
	// time, so the query range carries the explicit UTC-3 offset
	rangeStartSuffix = "T00:00:00.000000-03:00"
	rangeEndSuffix   = "T23:59:59.999000-03:00"

	msgNoRecords = "Nenhum registro encontrado para o período selecionado."
)

// DashboardService assembles one dashboard load: it queries the automation
// backend for the date range, sanitizes and sorts what comes back, and
// derives the aggregate totals and both chart models server-side.
type DashboardService struct {
	automation webhooks.AutomationClientInterface
	metrics    MetricsRecorderInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(automation webhooks.AutomationClientInterface, metrics MetricsRecorderInterface) DashboardServiceInterface {
	return &DashboardService{
		automation: automation,
		metrics:    metrics,
	}
}

// LoadDashboard runs the full dashboard flow for one user and date range
func (s *DashboardService) LoadDashboard(ctx context.Context, userID uuid.UUID, query dto.DashboardQuery) (*dto.DashboardResponse, error) {
	started := time.Now()

	if query.StartDate > query.EndDate {
		s.countLoad("invalid")
		return nil, ErrInvalidDateRange
	}

	payload, err := s.automation.QueryTransactions(ctx, webhooks.TransactionsQuery{
		StartDate: query.StartDate + rangeStartSuffix,
		EndDate:   query.EndDate + rangeEndSuffix,
		UserID:    userID,
		Category:  query.Category,
	})
	if err != nil {
		s.countLoad("error")
		return nil, fmt.Errorf("dashboard load: %w", err)
	}

	transactions := payload.Transactions
	balances := payload.DailyBalances
	models.SortRecordsByDateDesc(transactions)

	response := &dto.DashboardResponse{
		Summary:       analytics.Summarize(transactions),
		Transactions:  transactions,
		DailyBalances: balances,
		Distribution:  analytics.Distribution(transactions),
	}

	if len(transactions) == 0 && len(balances) == 0 {
		response.Message = msgNoRecords
	}

	// Chart builders return nil for empty input; the response simply omits
	// the chart in that case
	response.BalanceChart = charts.NewBalanceChart(balances)
	response.CategoryChart = charts.NewDonutChart(response.Distribution, response.Summary.TotalOutcome)

	s.countLoad("success")
	s.metrics.RecordProcessingTime("dashboard_load", time.Since(started))
	return response, nil
}

// DeleteTransactions forwards a bulk deletion to the automation backend.
// Records live upstream, so nothing is removed locally.
func (s *DashboardService) DeleteTransactions(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return ErrNoTransactionIDs
	}

	if err := s.automation.DeleteTransactions(ctx, ids); err != nil {
		return fmt.Errorf("delete transactions: %w", err)
	}
	return nil
}

func (s *DashboardService) countLoad(status string) {
	s.metrics.IncrementCounter("dashboard_request", map[string]string{"status": status})
}
