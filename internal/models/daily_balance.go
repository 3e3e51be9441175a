package models

import "time"

// DailyBalance is one point of the externally derived balance series, one
// entry per day in the queried range. Ascending date order is significant for
// the line chart; totals do not depend on it.
type DailyBalance struct {
	Date    string     `json:"data"`
	Balance FlexAmount `json:"saldo"`
}

// ParsedDate parses the balance date, accepting bare ISO dates and full
// timestamps
func (b *DailyBalance) ParsedDate() time.Time {
	return parseFlexibleDate(b.Date)
}
