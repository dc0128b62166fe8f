// Package stripe reads checkout sessions and cancels subscriptions through
// the Stripe REST API
package stripe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/studyforge/backend/internal/models"
)

// Client is a minimal Stripe API client
type Client struct {
	http *resty.Client
}

// NewClient creates a new Stripe client authenticated with secretKey
func NewClient(secretKey, baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetBasicAuth(secretKey, "")
	if timeout > 0 {
		httpClient.SetTimeout(timeout)
	}
	return &Client{http: httpClient}
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type checkoutSession struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"payment_status"`
	Customer        json.RawMessage `json:"customer"`
	CustomerDetails *struct {
		Email string `json:"email"`
	} `json:"customer_details"`
}

type customer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// customer is either an id string or an expanded object
func (s *checkoutSession) customer() customer {
	raw := bytes.TrimSpace(s.Customer)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return customer{}
	}
	if raw[0] == '"' {
		var id string
		_ = json.Unmarshal(raw, &id)
		return customer{ID: id}
	}
	var c customer
	_ = json.Unmarshal(raw, &c)
	return c
}

// GetCheckoutSession retrieves a session with its customer expanded
func (c *Client) GetCheckoutSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	var out checkoutSession
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", sessionID).
		SetQueryParam("expand[]", "customer").
		SetResult(&out).
		SetError(&apiErr).
		Get("/v1/checkout/sessions/{id}")
	if err != nil {
		return nil, fmt.Errorf("stripe request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("stripe returned status %d: %s", resp.StatusCode(), apiErr.Error.Message)
	}

	cust := out.customer()
	email := cust.Email
	if email == "" && out.CustomerDetails != nil {
		email = out.CustomerDetails.Email
	}

	return &models.CheckoutSession{
		ID:            out.ID,
		Status:        out.Status,
		PaymentStatus: out.PaymentStatus,
		CustomerID:    cust.ID,
		CustomerEmail: email,
	}, nil
}

type subscriptionList struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

// CancelActiveSubscription schedules the customer's active subscription to
// end with the current period. It is a no-op when nothing is active.
func (c *Client) CancelActiveSubscription(ctx context.Context, customerID string) error {
	var list subscriptionList
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"customer": customerID,
			"status":   "active",
			"limit":    "1",
		}).
		SetResult(&list).
		SetError(&apiErr).
		Get("/v1/subscriptions")
	if err != nil {
		return fmt.Errorf("stripe request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("stripe returned status %d: %s", resp.StatusCode(), apiErr.Error.Message)
	}
	if len(list.Data) == 0 {
		return nil
	}

	resp, err = c.http.R().
		SetContext(ctx).
		SetPathParam("id", list.Data[0].ID).
		SetFormData(map[string]string{"cancel_at_period_end": "true"}).
		SetError(&apiErr).
		Post("/v1/subscriptions/{id}")
	if err != nil {
		return fmt.Errorf("stripe request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("stripe returned status %d: %s", resp.StatusCode(), apiErr.Error.Message)
	}
	return nil
}
