// Package format holds the locale-aware display helpers shared by the chart
// builders and the API responses: Brazilian currency and date formatting.
package format

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	invalidDateLabel = "Data Inválida"
	missingDateLabel = "N/A"
)

var dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Currency renders a decimal as pt-BR currency, e.g. "R$ 1.234,56".
// Negative values keep the sign ahead of the symbol: "-R$ 10,00".
func Currency(value decimal.Decimal) string {
	return "R$ " + Number(value)
}

// Number renders a decimal with pt-BR separators and two decimal places,
// e.g. "1.234,56"
func Number(value decimal.Decimal) string {
	fixed := value.Abs().StringFixed(2)

	intPart := fixed
	fracPart := "00"
	if idx := strings.IndexByte(fixed, '.'); idx >= 0 {
		intPart = fixed[:idx]
		fracPart = fixed[idx+1:]
	}

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	out := grouped.String() + "," + fracPart
	if value.IsNegative() {
		return "-" + out
	}
	return out
}

// ShortDate formats an ISO date or timestamp as "dd/mm". Empty input yields
// "N/A" and unparseable input yields "Data Inválida", so a bad upstream date
// never breaks an axis label.
func ShortDate(value string) string {
	ts, label, ok := parseDate(value)
	if !ok {
		return label
	}
	return ts.Format("02/01")
}

// LongDate formats an ISO date or timestamp as "dd/mm/yyyy" with the same
// fallbacks as ShortDate
func LongDate(value string) string {
	ts, label, ok := parseDate(value)
	if !ok {
		return label
	}
	return ts.Format("02/01/2006")
}

func parseDate(value string) (time.Time, string, bool) {
	if value == "" {
		return time.Time{}, missingDateLabel, false
	}

	layouts := []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"}
	if dateOnlyPattern.MatchString(value) {
		layouts = []string{"2006-01-02"}
	}

	for _, layout := range layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, "", true
		}
	}
	return time.Time{}, invalidDateLabel, false
}
