package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/studyforge/backend/internal/models"
	"github.com/studyforge/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPaymentHandler_VerifySession(t *testing.T) {
	tests := []struct {
		name           string
		svc            *mockPaymentService
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "granted",
			svc:            &mockPaymentService{verify: &models.VerifySessionResponse{Success: true}},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true}`,
		},
		{
			name:           "already processed",
			svc:            &mockPaymentService{verify: &models.VerifySessionResponse{Success: true, AlreadyProcessed: true}},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"alreadyProcessed":true}`,
		},
		{
			name:           "unpaid session",
			svc:            &mockPaymentService{err: services.ErrValidation},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "concurrent verification",
			svc:            &mockPaymentService{err: services.ErrBusy},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(NewPaymentHandler(tt.svc, zap.NewNop()))

			w := doRequest(t, router, http.MethodPost, "/api/v1/payment/verify-session", models.VerifySessionRequest{SessionID: "cs_1"})

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestPaymentHandler_Downgrade(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockPaymentService{message: &models.MessageResponse{Success: true, Message: "Membership cancelled"}}
		router := newTestRouter(NewPaymentHandler(svc, zap.NewNop()))

		w := doRequest(t, router, http.MethodPost, "/api/v1/payment/downgrade", models.DowngradeRequest{Email: "a@b.com"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"message":"Membership cancelled"}`, w.Body.String())
	})

	t.Run("billing failure", func(t *testing.T) {
		svc := &mockPaymentService{err: errors.New("stripe returned status 500")}
		router := newTestRouter(NewPaymentHandler(svc, zap.NewNop()))

		w := doRequest(t, router, http.MethodPost, "/api/v1/payment/downgrade", models.DowngradeRequest{Email: "a@b.com"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"failed to downgrade membership"}`, w.Body.String())
	})
}
