// Package analytics derives the dashboard's summary numbers from a raw
// transaction list: income/outcome totals, the net balance and the ranked
// spending distribution that feeds the donut chart.
package analytics

import (
	"sort"

	"granazap/internal/models"

	"github.com/shopspring/decimal"
)

// Summary aggregates a transaction list into the three headline totals
type Summary struct {
	TotalIncome  decimal.Decimal `json:"total_entradas"`
	TotalOutcome decimal.Decimal `json:"total_saidas"`
	Balance      decimal.Decimal `json:"saldo"`
}

// Summarize folds the transaction list into income, outcome and balance.
// Amounts were already normalized to decimals at the ingestion boundary, so
// the fold is a plain sum with no per-record guarding.
func Summarize(records []models.TransactionRecord) Summary {
	income := decimal.Zero
	outcome := decimal.Zero

	for i := range records {
		switch {
		case records[i].IsIncome():
			income = income.Add(records[i].Amount.Decimal)
		case records[i].IsOutcome():
			outcome = outcome.Add(records[i].Amount.Decimal)
		}
	}

	return Summary{
		TotalIncome:  income,
		TotalOutcome: outcome,
		Balance:      income.Sub(outcome),
	}
}

// Distribution groups outcome transactions by category, sums each group and
// ranks the result strictly descending by summed value. Records without a
// category land in "Outros". Palette colors are assigned by rank, cycling.
func Distribution(records []models.TransactionRecord) []models.CategorySlice {
	byCategory := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for i := range records {
		if !records[i].IsOutcome() {
			continue
		}
		name := records[i].Category
		if name == "" {
			name = models.CategoryOther
		}
		if _, seen := byCategory[name]; !seen {
			order = append(order, name)
		}
		byCategory[name] = byCategory[name].Add(records[i].Amount.Decimal)
	}

	slices := make([]models.CategorySlice, 0, len(order))
	for _, name := range order {
		slices = append(slices, models.CategorySlice{
			Name:  name,
			Value: byCategory[name],
		})
	}

	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Value.GreaterThan(slices[j].Value)
	})

	for i := range slices {
		slices[i].ColorIndex = i % models.PaletteSize()
		slices[i].Color = models.PaletteColor(i)
	}

	return slices
}

// SharePercent computes value/total*100 to one decimal place for legend
// display, returning "0.0" when the total is zero
func SharePercent(value, total decimal.Decimal) string {
	if total.IsZero() {
		return "0.0"
	}
	return value.Div(total).Mul(decimal.NewFromInt(100)).StringFixed(1)
}
