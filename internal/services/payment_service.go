package services

import (
	"context"
	"fmt"
	"time"

	"github.com/studyforge/backend/internal/models"
	"go.uber.org/zap"
)

const checkoutLockTTL = 30 * time.Second

// BillingProvider is the external payment provider
type BillingProvider interface {
	// GetCheckoutSession retrieves a checkout session with its customer
	GetCheckoutSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	// CancelActiveSubscription ends the customer's active subscription at period end
	CancelActiveSubscription(ctx context.Context, customerID string) error
}

// PaymentRepository is the interface that wraps the checkout idempotency ledger
type PaymentRepository interface {
	ExistsBySessionID(ctx context.Context, sessionID string) (bool, error)
	// Create inserts a record and reports false when the session was already recorded
	Create(ctx context.Context, record *models.PaymentRecord) (bool, error)
}

// MembershipNotifier queues the welcome email of a new member
type MembershipNotifier interface {
	EnqueueMembershipEmail(ctx context.Context, email string) error
}

type paymentService struct {
	billing  BillingProvider
	payments PaymentRepository
	users    UserRepository
	ledger   *Ledger
	notifier MembershipNotifier
	locker   Locker
	logger   *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	billing BillingProvider,
	payments PaymentRepository,
	users UserRepository,
	ledger *Ledger,
	notifier MembershipNotifier,
	locker Locker,
	logger *zap.Logger,
) *paymentService {
	return &paymentService{
		billing:  billing,
		payments: payments,
		users:    users,
		ledger:   ledger,
		notifier: notifier,
		locker:   locker,
		logger:   logger,
	}
}

// VerifySession applies a completed checkout session to the payer's account
// exactly once. A session that was already applied reports AlreadyProcessed
// without touching the account again.
func (s *paymentService) VerifySession(ctx context.Context, req *models.VerifySessionRequest) (*models.VerifySessionResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var resp *models.VerifySessionResponse
	err := withLock(ctx, s.locker, s.logger, "checkout:"+req.SessionID, checkoutLockTTL, func() error {
		var err error
		resp, err = s.verifySession(ctx, req.SessionID)
		return err
	})
	return resp, err
}

func (s *paymentService) verifySession(ctx context.Context, sessionID string) (*models.VerifySessionResponse, error) {
	processed, err := s.payments.ExistsBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check payment record: %w", err)
	}
	if processed {
		return &models.VerifySessionResponse{Success: true, AlreadyProcessed: true}, nil
	}

	session, err := s.billing.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}
	if !session.Paid() {
		return nil, validationError("checkout session %s is not paid", sessionID)
	}
	if session.CustomerEmail == "" {
		return nil, validationError("checkout session %s has no customer email", sessionID)
	}

	if err := s.ledger.GrantMembership(ctx, session.CustomerEmail, session.CustomerID); err != nil {
		return nil, err
	}

	created, err := s.payments.Create(ctx, &models.PaymentRecord{
		CustomerID: session.CustomerID,
		SessionID:  sessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	if !created {
		return &models.VerifySessionResponse{Success: true, AlreadyProcessed: true}, nil
	}

	s.logger.Info("Checkout session applied",
		zap.String("session_id", sessionID),
		zap.String("email", session.CustomerEmail),
	)
	if err := s.notifier.EnqueueMembershipEmail(ctx, session.CustomerEmail); err != nil {
		s.logger.Warn("failed to enqueue membership email", zap.String("email", session.CustomerEmail), zap.Error(err))
	}
	return &models.VerifySessionResponse{Success: true}, nil
}

// Downgrade cancels the user's subscription at period end and returns the
// account to the free plan
func (s *paymentService) Downgrade(ctx context.Context, req *models.DowngradeRequest) (*models.MessageResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, notFound(err, "user")
	}

	if user.CustomerID != nil && *user.CustomerID != "" {
		if err := s.billing.CancelActiveSubscription(ctx, *user.CustomerID); err != nil {
			return nil, fmt.Errorf("failed to cancel subscription: %w", err)
		}
	}
	if err := s.ledger.RevokeMembership(ctx, req.Email); err != nil {
		return nil, err
	}

	return &models.MessageResponse{Success: true, Message: "Membership cancelled"}, nil
}
