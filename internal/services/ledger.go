package services

import (
	"context"
	"fmt"

	"github.com/studyforge/backend/internal/models"
	"go.uber.org/zap"
)

// LedgerRepository is the interface that wraps the credit and membership writes
type LedgerRepository interface {
	// DebitCredit takes one credit from a free user with a positive balance.
	// It reports false and changes nothing when no credit could be taken.
	DebitCredit(ctx context.Context, email string) (bool, error)
	// GrantMembership marks the user as a premium member of the billing customer
	GrantMembership(ctx context.Context, email, customerID string, credits int) error
	// RevokeMembership returns the user to the free plan with the given balance
	RevokeMembership(ctx context.Context, email string, credits int) error
}

// Ledger applies the credit and membership rules
type Ledger struct {
	repo   LedgerRepository
	logger *zap.Logger
}

// NewLedger creates a new ledger
func NewLedger(repo LedgerRepository, logger *zap.Logger) *Ledger {
	return &Ledger{
		repo:   repo,
		logger: logger,
	}
}

// CanGenerate reports whether the user may start a generation
func CanGenerate(user *models.User) bool {
	return user.IsMember || user.Credits > 0
}

// Debit charges one generation to the user. Members are never charged.
// The user's balance is updated in place on success.
func (l *Ledger) Debit(ctx context.Context, user *models.User) error {
	if user.IsMember {
		return nil
	}
	ok, err := l.repo.DebitCredit(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("failed to debit credit: %w", err)
	}
	if !ok {
		return ErrNoCredits
	}
	user.Credits--
	return nil
}

// GrantMembership upgrades the user to the premium plan
func (l *Ledger) GrantMembership(ctx context.Context, email, customerID string) error {
	if err := l.repo.GrantMembership(ctx, email, customerID, models.MemberCredits); err != nil {
		return notFound(err, "user")
	}
	l.logger.Info("Membership granted", zap.String("email", email))
	return nil
}

// RevokeMembership returns the user to the free plan and default credits.
// Payment records are kept so old checkout sessions stay processed.
func (l *Ledger) RevokeMembership(ctx context.Context, email string) error {
	if err := l.repo.RevokeMembership(ctx, email, models.DefaultCredits); err != nil {
		return notFound(err, "user")
	}
	l.logger.Info("Membership revoked", zap.String("email", email))
	return nil
}
