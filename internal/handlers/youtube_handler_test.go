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

func TestYouTubeHandler_Get(t *testing.T) {
	svc := &mockRecommendationService{resp: &models.RecommendationsResponse{Recommendations: []models.YouTubeRecommendation{}}}
	router := newTestRouter(NewYouTubeHandler(svc, zap.NewNop()))

	w := doRequest(t, router, http.MethodGet, "/api/v1/youtube-recommendations?courseId=c1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"recommendations":[]}`, w.Body.String())
	assert.Equal(t, "c1", svc.lastCourseID)
	assert.Equal(t, 0, svc.generated)
}

func TestYouTubeHandler_Generate(t *testing.T) {
	tests := []struct {
		name           string
		svc            *mockRecommendationService
		expectedStatus int
	}{
		{
			name: "success",
			svc: &mockRecommendationService{resp: &models.RecommendationsResponse{Recommendations: []models.YouTubeRecommendation{
				{CourseID: "c1", VideoID: "v1", SimilarityScore: 91},
			}}},
			expectedStatus: http.StatusOK,
		},
		{name: "unknown course", svc: &mockRecommendationService{err: services.ErrNotFound}, expectedStatus: http.StatusNotFound},
		{name: "ranking in progress", svc: &mockRecommendationService{err: services.ErrBusy}, expectedStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(NewYouTubeHandler(tt.svc, zap.NewNop()))

			w := doRequest(t, router, http.MethodPost, "/api/v1/youtube-recommendations", models.RecommendationRequest{CourseID: "c1", Topic: "Go"})

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, 1, tt.svc.generated)
			if tt.expectedStatus == http.StatusOK {
				var resp models.RecommendationsResponse
				decodeBody(t, w, &resp)
				require.Len(t, resp.Recommendations, 1)
				assert.Equal(t, 91, resp.Recommendations[0].SimilarityScore)
			}
		})
	}
}
