package dto

// Checkout Request DTOs

// CheckoutStartRequest registers the lead before redirecting to payment
type CheckoutStartRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"omitempty,max=255"`
	Phone  string `json:"phone" validate:"omitempty,max=20"`
	Source string `json:"source" validate:"omitempty,max=100"`
	Plan   string `json:"plan" validate:"omitempty,max=100"`
}

// Checkout Response DTOs

// CheckoutStartResponse returns the personalized payment page URL
type CheckoutStartResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

// SubscriptionStatusResponse is the user-facing subscription view. Period is
// present only when the subscription is active; Message explains a degraded
// lookup.
type SubscriptionStatusResponse struct {
	Status  string `json:"status"`
	Period  string `json:"period,omitempty"`
	Message string `json:"message,omitempty"`
}
