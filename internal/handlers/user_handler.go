package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyforge/backend/internal/models"
	"go.uber.org/zap"
)

// UserService is the interface that wraps methods for user accounts.
type UserService interface {
	// Method Init returns the user with the request email, creating it on first sign-in.
	Init(ctx context.Context, req *models.InitUserRequest) (*models.User, error)
	// Method Credits returns the user's remaining credits and membership flag.
	Credits(ctx context.Context, req *models.CreditsRequest) (*models.CreditsResponse, error)
}

// UserHandler handles user account requests
type UserHandler struct {
	BaseHandler
	service UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(svc UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all user handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/users/init", h.Init)
	r.Post("/credits", h.Credits)
}

// Init handles POST /users/init
// @Summary Initialize user
// @Description Create the user with free plan defaults on first sign-in, or return the existing user
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.InitUserRequest true "User identity"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security ApiKeyAuth
// @Router /users/init [post]
func (h *UserHandler) Init(w http.ResponseWriter, r *http.Request) {
	var req models.InitUserRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.Init(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "initialize user")
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}

// Credits handles POST /credits
// @Summary Get credits
// @Description Get the remaining generation credits and membership flag of a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.CreditsRequest true "User email"
// @Success 200 {object} models.CreditsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security ApiKeyAuth
// @Router /credits [post]
func (h *UserHandler) Credits(w http.ResponseWriter, r *http.Request) {
	var req models.CreditsRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	credits, err := h.service.Credits(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "get credits")
		return
	}

	h.RespondJSON(w, http.StatusOK, credits)
}
