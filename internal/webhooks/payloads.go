package webhooks

import (
	"granazap/internal/models"

	"github.com/google/uuid"
)

// TransactionsQuery is the filter sent to the transactions query webhook.
// Start and End are already formatted with the explicit UTC-3 offset.
type TransactionsQuery struct {
	StartDate string
	EndDate   string
	UserID    uuid.UUID
	Category  string
}

// TransactionsPayload is the combined response of the transactions query
// webhook: the records for the range plus the daily balance series
type TransactionsPayload struct {
	Transactions  []models.TransactionRecord `json:"transacoes"`
	DailyBalances []models.DailyBalance      `json:"saldos_diarios"`
}

// LimitEntry is one stored limit as the limits read webhook reports it
type LimitEntry struct {
	Category string            `json:"categoria"`
	Limit    models.FlexAmount `json:"limite"`
}

type limitsReadPayload struct {
	Limits []LimitEntry `json:"limites"`
}

// LimitValue is one limit in the write payload
type LimitValue struct {
	Category string  `json:"categoria"`
	Value    float64 `json:"valor"`
}

type limitsWriteRequest struct {
	UserID string       `json:"userId"`
	Limits []LimitValue `json:"limites"`
}

type deleteTransactionsRequest struct {
	IDs []string `json:"ids"`
}

type spendEntry struct {
	Category string            `json:"categoria"`
	Spent    models.FlexAmount `json:"gasto"`
}

// SubscriptionPayload is the subscription status webhook response
type SubscriptionPayload struct {
	Status string `json:"subscription_status"`
	Period string `json:"subscription_period,omitempty"`
}

// CRMContact is the checkout-start side-channel payload: it upserts a CRM
// contact and subscribes it to the marketing list
type CRMContact struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Source string `json:"source"`
	Plan   string `json:"plan"`
}
