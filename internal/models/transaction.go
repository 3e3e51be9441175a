package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction kinds as produced by the ingestion pipeline
const (
	KindIncome  = "Entrada"
	KindOutcome = "Saída"
)

var ErrInvalidTransactionKind = errors.New("invalid transaction kind")

// FlexAmount is a decimal that tolerates the loose typing of webhook
// payloads: JSON numbers, numeric strings, null and garbage all decode
// without error. Anything that is not a parseable number becomes zero, so a
// bad row can never poison a sum downstream.
type FlexAmount struct {
	decimal.Decimal
}

// NewFlexAmount wraps a decimal in a FlexAmount
func NewFlexAmount(d decimal.Decimal) FlexAmount {
	return FlexAmount{Decimal: d}
}

// FlexFromFloat builds a FlexAmount from a float64
func FlexFromFloat(f float64) FlexAmount {
	return FlexAmount{Decimal: decimal.NewFromFloat(f)}
}

// UnmarshalJSON normalizes numbers, numeric strings and null to a decimal.
// Unparseable values decode as zero rather than failing the whole payload.
func (a *FlexAmount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		a.Decimal = d
		return nil
	}

	d, err := decimal.NewFromString(string(trimmed))
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// MarshalJSON emits the amount as a plain JSON number
func (a FlexAmount) MarshalJSON() ([]byte, error) {
	f, _ := a.Float64()
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

// TransactionRecord is a single transaction as returned by the transactions
// query webhook. Records are read-only here; the only mutation available is
// bulk deletion by id through the deletion webhook.
type TransactionRecord struct {
	ID          string     `json:"id"`
	Description string     `json:"descricao"`
	Kind        string     `json:"tipo"`
	Category    string     `json:"categoria"`
	Date        string     `json:"data"`
	Amount      FlexAmount `json:"valor"`
}

// IsIncome reports whether the record is an Entrada
func (t *TransactionRecord) IsIncome() bool { return t.Kind == KindIncome }

// IsOutcome reports whether the record is a Saída
func (t *TransactionRecord) IsOutcome() bool { return t.Kind == KindOutcome }

// ParsedDate parses the record date, accepting both bare ISO dates and full
// timestamps. The zero time is returned for unparseable dates.
func (t *TransactionRecord) ParsedDate() time.Time {
	return parseFlexibleDate(t.Date)
}

// SortRecordsByDateDesc orders records newest first, matching the listing
// order of the dashboard
func SortRecordsByDateDesc(records []TransactionRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ParsedDate().After(records[j].ParsedDate())
	})
}

func parseFlexibleDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}
