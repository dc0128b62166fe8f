package models

import "time"

// PlanType represents the billing plan of a user
type PlanType string

const (
	PlanFree    PlanType = "free"
	PlanPremium PlanType = "premium"
)

const (
	// DefaultCredits is the free allotment given on sign-up and on downgrade
	DefaultCredits = 2
	// MemberCredits is the effectively unlimited balance stored for members
	MemberCredits = 999999
)

// User represents an account known to the system
type User struct {
	ID         int       `json:"id"`
	UserName   string    `json:"userName"`
	Email      string    `json:"email"`
	IsMember   bool      `json:"isMember"`
	CustomerID *string   `json:"customerId,omitempty"`
	Credits    int       `json:"credits"`
	PlanType   PlanType  `json:"planType"`
	CreatedAt  time.Time `json:"createdAt"`
}

// InitUserRequest represents a request to register a user on first sign-in
type InitUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	UserName string `json:"userName" validate:"max=255"`
}

// CreditsRequest represents a request to read a user's balance
type CreditsRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// CreditsResponse represents a user's current balance
type CreditsResponse struct {
	RemainingCredits int  `json:"remainingCredits"`
	IsMember         bool `json:"isMember"`
}
