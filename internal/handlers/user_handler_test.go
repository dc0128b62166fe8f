package handlers

import (
	"net/http"
	"testing"

	"github.com/studyforge/backend/internal/models"
	"github.com/studyforge/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserHandler_Init(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		svc            *mockUserService
		expectedStatus int
	}{
		{
			name:           "success",
			body:           models.InitUserRequest{Email: "a@b.com", UserName: "Ann"},
			svc:            &mockUserService{user: &models.User{ID: 1, Email: "a@b.com", Credits: 2, PlanType: models.PlanFree}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid body",
			body:           "{",
			svc:            &mockUserService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "validation error",
			body:           models.InitUserRequest{},
			svc:            &mockUserService{err: services.ErrValidation},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(NewUserHandler(tt.svc, zap.NewNop()))

			w := doRequest(t, router, http.MethodPost, "/api/v1/users/init", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var user models.User
				decodeBody(t, w, &user)
				assert.Equal(t, "a@b.com", user.Email)
				assert.Equal(t, 2, user.Credits)
			}
		})
	}
}

func TestUserHandler_Credits(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockUserService{credits: &models.CreditsResponse{RemainingCredits: 1}}
		router := newTestRouter(NewUserHandler(svc, zap.NewNop()))

		w := doRequest(t, router, http.MethodPost, "/api/v1/credits", models.CreditsRequest{Email: "a@b.com"})

		require.Equal(t, http.StatusOK, w.Code)
		var resp models.CreditsResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, 1, resp.RemainingCredits)
		assert.False(t, resp.IsMember)
		assert.Equal(t, &models.CreditsRequest{Email: "a@b.com"}, svc.lastReq)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := &mockUserService{err: services.ErrNotFound}
		router := newTestRouter(NewUserHandler(svc, zap.NewNop()))

		w := doRequest(t, router, http.MethodPost, "/api/v1/credits", models.CreditsRequest{Email: "x@b.com"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
