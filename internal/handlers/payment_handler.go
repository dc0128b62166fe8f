package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyforge/backend/internal/models"
	"go.uber.org/zap"
)

// PaymentService is the interface that wraps methods for memberships.
type PaymentService interface {
	// Method VerifySession grants membership for a paid checkout session.
	// A session that was already processed succeeds with AlreadyProcessed set.
	VerifySession(ctx context.Context, req *models.VerifySessionRequest) (*models.VerifySessionResponse, error)
	// Method Downgrade cancels the active subscription and revokes membership.
	Downgrade(ctx context.Context, req *models.DowngradeRequest) (*models.MessageResponse, error)
}

// PaymentHandler handles payment requests
type PaymentHandler struct {
	BaseHandler
	service PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(svc PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all payment handler routes
func (h *PaymentHandler) RegisterRoutes(r chi.Router) {
	r.Route("/payment", func(r chi.Router) {
		r.Post("/verify-session", h.VerifySession)
		r.Post("/downgrade", h.Downgrade)
	})
}

// VerifySession handles POST /payment/verify-session
// @Summary Verify checkout session
// @Description Verify a paid checkout session with the billing provider and grant membership once
// @Tags payment
// @Accept json
// @Produce json
// @Param request body models.VerifySessionRequest true "Checkout session id"
// @Success 200 {object} models.VerifySessionResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security ApiKeyAuth
// @Router /payment/verify-session [post]
func (h *PaymentHandler) VerifySession(w http.ResponseWriter, r *http.Request) {
	var req models.VerifySessionRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.VerifySession(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "verify checkout session")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Downgrade handles POST /payment/downgrade
// @Summary Downgrade membership
// @Description Cancel the active subscription at period end and revoke membership
// @Tags payment
// @Accept json
// @Produce json
// @Param request body models.DowngradeRequest true "User email"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security ApiKeyAuth
// @Router /payment/downgrade [post]
func (h *PaymentHandler) Downgrade(w http.ResponseWriter, r *http.Request) {
	var req models.DowngradeRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Downgrade(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "downgrade membership")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}
