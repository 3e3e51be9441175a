package dto

import (
	"granazap/internal/analytics"
	"granazap/internal/charts"
	"granazap/internal/models"
)

// Dashboard Request DTOs

// DashboardQuery represents the dashboard date-range query
type DashboardQuery struct {
	StartDate string `query:"startDate" json:"startDate" validate:"required,date_only"`
	EndDate   string `query:"endDate" json:"endDate" validate:"required,date_only"`
	Category  string `query:"category" json:"category" validate:"omitempty,spending_category"`
}

// DeleteTransactionsRequest represents a bulk deletion by transaction id
type DeleteTransactionsRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// Dashboard Response DTOs

// DashboardResponse carries everything one dashboard load needs: raw lists,
// aggregate totals, and both pre-computed chart models. Message is set only
// when there is nothing to chart.
type DashboardResponse struct {
	Summary       analytics.Summary          `json:"resumo"`
	Transactions  []models.TransactionRecord `json:"transacoes"`
	DailyBalances []models.DailyBalance      `json:"saldos_diarios"`
	Distribution  []models.CategorySlice     `json:"distribuicao"`
	BalanceChart  *charts.BalanceChart       `json:"grafico_saldo,omitempty"`
	CategoryChart *charts.DonutChart         `json:"grafico_categorias,omitempty"`
	Message       string                     `json:"mensagem,omitempty"`
}

// DeleteTransactionsResponse confirms how many ids were forwarded for deletion
type DeleteTransactionsResponse struct {
	Deleted int    `json:"excluidos"`
	Message string `json:"message"`
}
