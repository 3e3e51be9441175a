// Package webhooks is the client for the automation backend that owns all
// transaction, limit, spend and subscription data. Every call runs under an
// explicit context deadline and a per-endpoint circuit breaker; a missed
// deadline surfaces as a typed TimeoutError instead of an ad hoc race.
package webhooks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"time"

	"granazap/internal/config"
	"granazap/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Endpoint names, used for breakers, metrics and error reporting
const (
	EndpointTransactions = "transactions"
	EndpointDeletion     = "deletion"
	EndpointLimitsRead   = "limits_read"
	EndpointLimitsWrite  = "limits_write"
	EndpointSpend        = "spend"
	EndpointSubscription = "subscription"
	EndpointCRM          = "crm"
)

var ErrBadPayload = errors.New("unexpected webhook payload")

// TimeoutError reports a call that missed its configured deadline
type TimeoutError struct {
	Endpoint string
	Err      error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("webhook %s: deadline exceeded: %v", e.Endpoint, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// IsTimeout reports whether err is (or wraps) a webhook deadline miss
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}

// StatusError reports a non-2xx response from a webhook
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook %s: unexpected status %d", e.Endpoint, e.StatusCode)
}

// MetricsRecorder is the slice of the metrics service the client needs
type MetricsRecorder interface {
	IncrementCounter(name string, labels map[string]string)
	RecordProcessingTime(operation string, duration time.Duration)
	SetCircuitBreakerState(endpoint string, state int)
}

// AutomationClientInterface defines the contract for the automation backend
type AutomationClientInterface interface {
	QueryTransactions(ctx context.Context, query TransactionsQuery) (*TransactionsPayload, error)
	DeleteTransactions(ctx context.Context, ids []string) error
	FetchLimits(ctx context.Context, userID uuid.UUID) ([]LimitEntry, error)
	SaveLimits(ctx context.Context, userID uuid.UUID, limits []LimitValue) error
	FetchSpendByCategory(ctx context.Context, userID uuid.UUID) ([]models.CategorySpend, error)
	FetchSubscription(ctx context.Context, userID uuid.UUID) (*SubscriptionPayload, error)
	UpsertCRMContact(ctx context.Context, contact CRMContact) error
}

// Client talks to the automation backend over HTTPS/JSON
type Client struct {
	httpClient *http.Client
	config     *config.WebhooksConfig
	breakers   map[string]*CircuitBreaker
	metrics    MetricsRecorder
}

// NewClient creates an automation client with one circuit breaker per
// endpoint
func NewClient(cfg *config.WebhooksConfig, metrics MetricsRecorder) *Client {
	breakerConfig := CircuitBreakerConfig{
		MaxFailures:     cfg.BreakerMaxFailures,
		ResetTimeout:    cfg.BreakerResetAfter,
		HalfOpenMaxSucc: DefaultCircuitBreakerConfig().HalfOpenMaxSucc,
	}

	endpoints := []string{
		EndpointTransactions, EndpointDeletion, EndpointLimitsRead,
		EndpointLimitsWrite, EndpointSpend, EndpointSubscription, EndpointCRM,
	}
	breakers := make(map[string]*CircuitBreaker, len(endpoints))
	for _, endpoint := range endpoints {
		breakers[endpoint] = NewCircuitBreaker(breakerConfig)
	}

	return &Client{
		httpClient: &http.Client{},
		config:     cfg,
		breakers:   breakers,
		metrics:    metrics,
	}
}

// QueryTransactions fetches the transactions and daily balances for a user
// and date range, optionally narrowed to one category
func (c *Client) QueryTransactions(ctx context.Context, query TransactionsQuery) (*TransactionsPayload, error) {
	params := url.Values{}
	params.Set("startDate", query.StartDate)
	params.Set("endDate", query.EndDate)
	params.Set("userId", query.UserID.String())
	if query.Category != "" {
		params.Set("category", query.Category)
	}

	endpoint := c.config.EndpointURL(c.config.TransactionsPath) + "?" + params.Encode()

	var payload TransactionsPayload
	if err := c.do(ctx, EndpointTransactions, http.MethodGet, endpoint, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DeleteTransactions forwards a bulk deletion by transaction id
func (c *Client) DeleteTransactions(ctx context.Context, ids []string) error {
	endpoint := c.config.EndpointURL(c.config.DeletionPath)
	return c.do(ctx, EndpointDeletion, http.MethodPost, endpoint, deleteTransactionsRequest{IDs: ids}, nil)
}

// FetchLimits reads the stored limits via the limits webhook. An empty list
// with a nil error means the user has no saved limits.
func (c *Client) FetchLimits(ctx context.Context, userID uuid.UUID) ([]LimitEntry, error) {
	endpoint := c.config.EndpointURL(c.config.LimitsReadPath) + "?user_id=" + userID.String()

	var payload limitsReadPayload
	if err := c.do(ctx, EndpointLimitsRead, http.MethodGet, endpoint, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Limits, nil
}

// SaveLimits submits the non-zero limits batch for a user
func (c *Client) SaveLimits(ctx context.Context, userID uuid.UUID, limits []LimitValue) error {
	endpoint := c.config.EndpointURL(c.config.LimitsWritePath)
	body := limitsWriteRequest{UserID: userID.String(), Limits: limits}
	return c.do(ctx, EndpointLimitsWrite, http.MethodPost, endpoint, body, nil)
}

// FetchSpendByCategory fetches the per-category spend totals for the current
// period
func (c *Client) FetchSpendByCategory(ctx context.Context, userID uuid.UUID) ([]models.CategorySpend, error) {
	endpoint := c.config.EndpointURL(c.config.SpendPath) + "?user_id=" + userID.String()

	var entries []spendEntry
	if err := c.do(ctx, EndpointSpend, http.MethodGet, endpoint, nil, &entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return ZeroSpend(), nil
	}

	spend := make([]models.CategorySpend, 0, len(entries))
	for _, entry := range entries {
		spend = append(spend, models.CategorySpend{
			Category: entry.Category,
			Spent:    entry.Spent.Decimal,
		})
	}
	return spend, nil
}

// FetchSubscription fetches the raw subscription status for a user
func (c *Client) FetchSubscription(ctx context.Context, userID uuid.UUID) (*SubscriptionPayload, error) {
	endpoint := c.config.EndpointURL(c.config.SubscriptionPath) + "?user_id=" + userID.String()

	var payload SubscriptionPayload
	if err := c.do(ctx, EndpointSubscription, http.MethodGet, endpoint, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// UpsertCRMContact registers a marketing lead before checkout. Callers treat
// this as fire-and-forget; the error is returned for logging only.
func (c *Client) UpsertCRMContact(ctx context.Context, contact CRMContact) error {
	endpoint := c.config.EndpointURL(c.config.CRMPath)
	return c.do(ctx, EndpointCRM, http.MethodPost, endpoint, contact, nil)
}

// do runs one webhook call under the configured deadline and the endpoint's
// circuit breaker, decoding the response into out when out is non-nil
func (c *Client) do(ctx context.Context, name, method, endpoint string, body, out any) error {
	breaker := c.breakers[name]
	if breaker.IsOpen() {
		c.count(name, "circuit_open")
		return fmt.Errorf("webhook %s: %w", name, ErrCircuitBreakerOpen)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("webhook %s: encode request: %w", name, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(callCtx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("webhook %s: build request: %w", name, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.RecordProcessingTime("webhook_"+name, time.Since(started))

	if err != nil {
		breaker.RecordFailure()
		c.publishBreakerState(name, breaker)
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			c.count(name, "timeout")
			return &TimeoutError{Endpoint: name, Err: err}
		}
		c.count(name, "error")
		return fmt.Errorf("webhook %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		breaker.RecordFailure()
		c.publishBreakerState(name, breaker)
		c.count(name, "error")
		return &StatusError{Endpoint: name, StatusCode: resp.StatusCode}
	}

	breaker.RecordSuccess()
	c.publishBreakerState(name, breaker)
	c.count(name, "success")

	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("webhook %s: read response: %w", name, err)
	}

	if err := decodeFlexible(raw, out); err != nil {
		slog.Warn("webhook returned an undecodable payload",
			"endpoint", name,
			"error", err)
		return fmt.Errorf("webhook %s: %w", name, ErrBadPayload)
	}
	return nil
}

// decodeFlexible tolerates the automation backend's two response shapes: a
// bare object, or an array of partial objects that are merged in order
// (later elements overwrite earlier fields)
func decodeFlexible(raw []byte, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] != '[' {
		return json.Unmarshal(trimmed, out)
	}

	// Target itself is a slice: decode directly
	if rv := reflect.ValueOf(out); rv.Kind() == reflect.Pointer && rv.Elem().Kind() == reflect.Slice {
		return json.Unmarshal(trimmed, out)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return err
	}
	for _, element := range elements {
		if err := json.Unmarshal(element, out); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) count(endpoint, status string) {
	c.metrics.IncrementCounter("webhook_requests", map[string]string{
		"endpoint": endpoint,
		"status":   status,
	})
}

func (c *Client) publishBreakerState(endpoint string, breaker *CircuitBreaker) {
	c.metrics.SetCircuitBreakerState(endpoint, int(breaker.GetState()))
}

// ZeroSpend returns a spend list covering every category with zero totals,
// used when the spend webhook has no data for the user
func ZeroSpend() []models.CategorySpend {
	categories := models.AllCategories()
	spend := make([]models.CategorySpend, 0, len(categories))
	for _, category := range categories {
		spend = append(spend, models.CategorySpend{Category: category, Spent: decimal.Zero})
	}
	return spend
}
