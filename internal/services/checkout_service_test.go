package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"granazap/internal/config"
	"granazap/internal/dto"
	"granazap/internal/webhooks"

	"github.com/stretchr/testify/suite"
)

// recordingAutomation captures CRM upserts from the background goroutine,
// which gomock's strict call accounting cannot wait on
type recordingAutomation struct {
	webhooks.AutomationClientInterface

	mu       sync.Mutex
	contacts []webhooks.CRMContact
	err      error
	done     chan struct{}
}

func newRecordingAutomation(err error) *recordingAutomation {
	return &recordingAutomation{err: err, done: make(chan struct{}, 8)}
}

func (r *recordingAutomation) UpsertCRMContact(_ context.Context, contact webhooks.CRMContact) error {
	r.mu.Lock()
	r.contacts = append(r.contacts, contact)
	r.mu.Unlock()
	r.done <- struct{}{}
	return r.err
}

func (r *recordingAutomation) wait(t *testing.T) webhooks.CRMContact {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the CRM upsert")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contacts[len(r.contacts)-1]
}

type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string) {}
func (noopMetrics) RecordProcessingTime(string, time.Duration) {}
func (noopMetrics) SetCircuitBreakerState(string, int)         {}

type CheckoutServiceTestSuite struct {
	suite.Suite
	automation *recordingAutomation
	service    CheckoutServiceInterface
}

func (s *CheckoutServiceTestSuite) SetupTest() {
	s.automation = newRecordingAutomation(nil)
	s.service = NewCheckoutService(s.automation, &config.CheckoutConfig{
		PaymentURL:  "https://pay.example.com/assinar",
		DefaultPlan: "mensal",
	}, noopMetrics{})
}

func TestCheckoutServiceSuite(t *testing.T) {
	suite.Run(t, new(CheckoutServiceTestSuite))
}

func (s *CheckoutServiceTestSuite) TestStartCheckout_BuildsPrefilledURL() {
	url := s.service.StartCheckout(context.Background(), dto.CheckoutStartRequest{
		Email: "maria@example.com",
		Name:  "Maria Silva",
		Phone: "556294537736",
	})

	s.Equal("https://pay.example.com/assinar?em=maria%40example.com&fn=Maria+Silva&ph=556294537736", url)
}

func (s *CheckoutServiceTestSuite) TestStartCheckout_RegistersLeadInBackground() {
	s.service.StartCheckout(context.Background(), dto.CheckoutStartRequest{
		Email:  "maria@example.com",
		Name:   "Maria Silva",
		Source: "landing-page",
		Plan:   "anual",
	})

	contact := s.automation.wait(s.T())
	s.Equal("maria@example.com", contact.Email)
	s.Equal("Maria Silva", contact.Name)
	s.Equal("landing-page", contact.Source)
	s.Equal("anual", contact.Plan)
}

func (s *CheckoutServiceTestSuite) TestStartCheckout_DefaultPlan() {
	s.service.StartCheckout(context.Background(), dto.CheckoutStartRequest{
		Email: "maria@example.com",
	})

	contact := s.automation.wait(s.T())
	s.Equal("mensal", contact.Plan, "missing plan falls back to the configured default")
}

func (s *CheckoutServiceTestSuite) TestStartCheckout_CRMFailureDoesNotBlockRedirect() {
	s.automation = newRecordingAutomation(errors.New("crm down"))
	s.service = NewCheckoutService(s.automation, &config.CheckoutConfig{
		PaymentURL:  "https://pay.example.com/assinar",
		DefaultPlan: "mensal",
	}, noopMetrics{})

	url := s.service.StartCheckout(context.Background(), dto.CheckoutStartRequest{
		Email: "maria@example.com",
	})

	s.NotEmpty(url, "the redirect URL is returned regardless of CRM health")
	s.automation.wait(s.T())
}

func (s *CheckoutServiceTestSuite) TestStartCheckout_NoPrefillFields() {
	service := NewCheckoutService(newRecordingAutomation(nil), &config.CheckoutConfig{
		PaymentURL: "https://pay.example.com/assinar",
	}, noopMetrics{})

	url := service.StartCheckout(context.Background(), dto.CheckoutStartRequest{})

	s.Equal("https://pay.example.com/assinar", url)
}
