package models

import "github.com/shopspring/decimal"

// CategorySlice is one entry of the category distribution: outcome spend in a
// single category, ranked descending by value. Derived state, recomputed on
// every query, never persisted.
type CategorySlice struct {
	Name       string          `json:"name"`
	Value      decimal.Decimal `json:"value"`
	ColorIndex int             `json:"color_index"`
	Color      string          `json:"color"`
}

// Share returns this slice's percentage of the given total, zero-guarded
func (s *CategorySlice) Share(total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return s.Value.Div(total).Mul(decimal.NewFromInt(100))
}
