package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/studyforge/backend/internal/models"
	"github.com/studyforge/backend/internal/repositories"
	"go.uber.org/zap"
)

// UserRepository is the interface that wraps user reads and inserts
type UserRepository interface {
	// GetByEmail retrieves a user by email.
	// repositories.ErrNotFound is returned when there is no such user.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts a new user.
	// repositories.ErrDuplicate is returned when the email is taken.
	Create(ctx context.Context, user *models.User) error
}

type userService struct {
	repo   UserRepository
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(repo UserRepository, logger *zap.Logger) *userService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

// Init returns the user with the request email, creating it with the free
// plan defaults on first sign-in
func (s *userService) Init(ctx context.Context, req *models.InitUserRequest) (*models.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user = &models.User{
		UserName: req.UserName,
		Email:    req.Email,
		Credits:  models.DefaultCredits,
		PlanType: models.PlanFree,
	}
	err = s.repo.Create(ctx, user)
	if errors.Is(err, repositories.ErrDuplicate) {
		// A concurrent sign-in created the user first
		return s.repo.GetByEmail(ctx, req.Email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User created", zap.String("email", user.Email))
	return user, nil
}

// Credits returns the user's remaining credits and membership flag
func (s *userService) Credits(ctx context.Context, req *models.CreditsRequest) (*models.CreditsResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, notFound(err, "user")
	}

	return &models.CreditsResponse{
		RemainingCredits: user.Credits,
		IsMember:         user.IsMember,
	}, nil
}
