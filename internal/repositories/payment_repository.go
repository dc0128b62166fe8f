package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/studyforge/backend/internal/models"
)

type paymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new payment record repository
func NewPaymentRepository(db *sql.DB) *paymentRepository {
	return &paymentRepository{db: db}
}

// ExistsBySessionID reports whether a checkout session was already applied
func (r *paymentRepository) ExistsBySessionID(ctx context.Context, sessionID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM payment_records WHERE session_id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payment record: %w", err)
	}
	return exists, nil
}

// Create appends a payment record. Returns false without error when the
// session id is already recorded.
func (r *paymentRepository) Create(ctx context.Context, record *models.PaymentRecord) (bool, error) {
	query := `
		INSERT INTO payment_records (customer_id, session_id)
		VALUES (?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, record.CustomerID, record.SessionID)
	if err != nil {
		if isDuplicateKey(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create payment record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("failed to get last insert id: %w", err)
	}

	record.ID = int(id)
	return true, nil
}
