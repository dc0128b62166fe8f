package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyforge/backend/internal/models"
	"go.uber.org/zap"
)

// RecommendationService is the interface that wraps methods for video recommendations.
type RecommendationService interface {
	// Method Get returns the cached recommendations of a course.
	Get(ctx context.Context, courseID string) (*models.RecommendationsResponse, error)
	// Method Generate ranks videos for the course topic and caches the best ones.
	// Existing recommendations are returned unchanged.
	Generate(ctx context.Context, req *models.RecommendationRequest) (*models.RecommendationsResponse, error)
}

// YouTubeHandler handles video recommendation requests
type YouTubeHandler struct {
	BaseHandler
	service RecommendationService
}

// NewYouTubeHandler creates a new video recommendation handler
func NewYouTubeHandler(svc RecommendationService, logger *zap.Logger) *YouTubeHandler {
	return &YouTubeHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all video recommendation routes
func (h *YouTubeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/youtube-recommendations", h.Get)
	r.Post("/youtube-recommendations", h.Generate)
}

// Get handles GET /youtube-recommendations
// @Summary Get video recommendations
// @Description Get the cached video recommendations of a course
// @Tags youtube
// @Produce json
// @Param courseId query string true "Course id"
// @Success 200 {object} models.RecommendationsResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security ApiKeyAuth
// @Router /youtube-recommendations [get]
func (h *YouTubeHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Get(r.Context(), r.URL.Query().Get("courseId"))
	if err != nil {
		h.RespondServiceError(w, err, "get video recommendations")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Generate handles POST /youtube-recommendations
// @Summary Generate video recommendations
// @Description Search videos for the course topic, rank them by embedding similarity and cache the top five
// @Tags youtube
// @Accept json
// @Produce json
// @Param request body models.RecommendationRequest true "Course and topic"
// @Success 200 {object} models.RecommendationsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Security ApiKeyAuth
// @Router /youtube-recommendations [post]
func (h *YouTubeHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendationRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "generate video recommendations")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}
