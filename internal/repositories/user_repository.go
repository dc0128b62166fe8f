package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/studyforge/backend/internal/models"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{db: db}
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, user_name, email, is_member, customer_id, credits, plan_type, created_at
		FROM users
		WHERE email = ?
		LIMIT 1
	`

	user := &models.User{}
	var customerID sql.NullString
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.UserName,
		&user.Email,
		&user.IsMember,
		&customerID,
		&user.Credits,
		&user.PlanType,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if customerID.Valid {
		user.CustomerID = &customerID.String
	}
	return user, nil
}

// Create inserts a new user with the free plan defaults.
// Returns ErrDuplicate when the email is already registered.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (user_name, email, is_member, credits, plan_type)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, user.UserName, user.Email, user.IsMember, user.Credits, user.PlanType)
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("user %s: %w", user.Email, ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = int(id)
	return nil
}

// DebitCredit takes one credit from a non-member with a positive balance.
// Returns false when no row qualified, so the balance never drops below zero.
func (r *userRepository) DebitCredit(ctx context.Context, email string) (bool, error) {
	query := `
		UPDATE users
		SET credits = credits - 1
		WHERE email = ? AND is_member = FALSE AND credits > 0
	`

	result, err := r.db.ExecContext(ctx, query, email)
	if err != nil {
		return false, fmt.Errorf("failed to debit credit: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// GrantMembership marks the user as a premium member
func (r *userRepository) GrantMembership(ctx context.Context, email, customerID string, credits int) error {
	query := `
		UPDATE users
		SET is_member = TRUE, plan_type = ?, credits = ?, customer_id = ?
		WHERE email = ?
	`

	result, err := r.db.ExecContext(ctx, query, models.PlanPremium, credits, customerID, email)
	if err != nil {
		return fmt.Errorf("failed to grant membership: %w", err)
	}

	return requireRow(result, "user "+email)
}

// RevokeMembership returns the user to the free plan with the given balance.
// The billing customer id is kept so a later checkout can reuse it.
func (r *userRepository) RevokeMembership(ctx context.Context, email string, credits int) error {
	query := `
		UPDATE users
		SET is_member = FALSE, plan_type = ?, credits = ?
		WHERE email = ?
	`

	result, err := r.db.ExecContext(ctx, query, models.PlanFree, credits, email)
	if err != nil {
		return fmt.Errorf("failed to revoke membership: %w", err)
	}

	return requireRow(result, "user "+email)
}

// requireRow turns a zero-row update into ErrNotFound
func requireRow(result sql.Result, what string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
