package models

import "time"

// PaymentRecord marks a checkout session as applied
type PaymentRecord struct {
	ID         int       `json:"id"`
	CustomerID string    `json:"customerId"`
	SessionID  string    `json:"sessionId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// VerifySessionRequest represents a checkout completion callback
type VerifySessionRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// VerifySessionResponse reports the outcome of a checkout verification
type VerifySessionResponse struct {
	Success          bool `json:"success"`
	AlreadyProcessed bool `json:"alreadyProcessed,omitempty"`
}

// DowngradeRequest represents a request to cancel membership
type DowngradeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// CheckoutSession is the billing provider's view of a checkout
type CheckoutSession struct {
	ID            string
	Status        string
	PaymentStatus string
	CustomerID    string
	CustomerEmail string
}

// Paid reports whether the session is complete and settled
func (s *CheckoutSession) Paid() bool {
	return s.Status == "complete" &&
		(s.PaymentStatus == "paid" || s.PaymentStatus == "no_payment_required")
}
