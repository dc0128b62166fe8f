package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/studyforge/backend/internal/models"
	"go.uber.org/zap"
)

// MarketplaceService is the interface that wraps methods for the public catalogue.
type MarketplaceService interface {
	// Method Publish makes a course public under a fresh slug.
	//
	// Publishing requires Ready QA, Quiz and Flashcard content and fails with
	// *services.IncompleteContentError or *services.StillGeneratingError otherwise.
	Publish(ctx context.Context, req *models.PublishRequest) (*models.PublishResponse, error)
	// Method Unpublish hides a course, clears its slug and resets upvotes.
	Unpublish(ctx context.Context, req *models.UnpublishRequest) (*models.MessageResponse, error)
	// Method List returns a page of public courses.
	List(ctx context.Context, query *models.MarketplaceQuery) (*models.MarketplaceListResponse, error)
	// Method GetBySlug returns a public course by its slug.
	GetBySlug(ctx context.Context, slug string) (*models.Course, error)
}

// EngagementService is the interface that wraps methods for upvotes and favorites.
type EngagementService interface {
	ToggleUpvote(ctx context.Context, req *models.UpvoteRequest) (*models.UpvoteResponse, error)
	UpvoteStatus(ctx context.Context, userID string, materialID int) (*models.UpvoteStatusResponse, error)
	ToggleFavorite(ctx context.Context, req *models.FavoriteRequest) (*models.FavoriteResponse, error)
	FavoriteStatus(ctx context.Context, userID, courseID string) (*models.FavoriteStatusResponse, error)
	ListFavorites(ctx context.Context, userID string) (*models.FavoritesListResponse, error)
}

// MarketplaceHandler handles marketplace requests
type MarketplaceHandler struct {
	BaseHandler
	marketplace MarketplaceService
	engagement  EngagementService
}

// NewMarketplaceHandler creates a new marketplace handler
func NewMarketplaceHandler(marketplace MarketplaceService, engagement EngagementService, logger *zap.Logger) *MarketplaceHandler {
	return &MarketplaceHandler{
		BaseHandler: BaseHandler{Logger: logger},
		marketplace: marketplace,
		engagement:  engagement,
	}
}

// RegisterRoutes registers all marketplace handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *MarketplaceHandler) RegisterRoutes(r chi.Router) {
	r.Route("/marketplace", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/course", h.GetBySlug)
		r.Post("/publish", h.Publish)
		r.Post("/unpublish", h.Unpublish)
		r.Post("/upvote", h.ToggleUpvote)
		r.Get("/upvote", h.UpvoteStatus)
		r.Post("/favorites", h.ToggleFavorite)
		r.Get("/favorites", h.Favorites)
	})
}

// List handles GET /marketplace
// @Summary Browse marketplace
// @Description Get a page of public courses
// @Tags marketplace
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Param search query string false "Search in title and topic"
// @Param sortBy query string false "newest, oldest, popular or title" default(newest)
// @Success 200 {object} models.MarketplaceListResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security ApiKeyAuth
// @Router /marketplace [get]
func (h *MarketplaceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := &models.MarketplaceQuery{
		Search: q.Get("search"),
		SortBy: models.MarketplaceSort(q.Get("sortBy")),
	}

	var ok bool
	if query.Page, ok = h.optionalInt(w, q.Get("page"), "page"); !ok {
		return
	}
	if query.Limit, ok = h.optionalInt(w, q.Get("limit"), "limit"); !ok {
		return
	}

	resp, err := h.marketplace.List(r.Context(), query)
	if err != nil {
		h.RespondServiceError(w, err, "list marketplace")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// GetBySlug handles GET /marketplace/course
// @Summary Get public course
// @Description Get a public course by its slug
// @Tags marketplace
// @Produce json
// @Param slug query string true "Public slug"
// @Success 200 {object} models.CourseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security ApiKeyAuth
// @Router /marketplace/course [get]
func (h *MarketplaceHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	course, err := h.marketplace.GetBySlug(r.Context(), r.URL.Query().Get("slug"))
	if err != nil {
		h.RespondServiceError(w, err, "get public course")
		return
	}

	h.RespondJSON(w, http.StatusOK, models.CourseResponse{Result: course})
}

// Publish handles POST /marketplace/publish
// @Summary Publish course
// @Description Make a course public. Requires Ready QA, Quiz and Flashcard content.
// @Tags marketplace
// @Accept json
// @Produce json
// @Param request body models.PublishRequest true "Course row id"
// @Success 200 {object} models.PublishResponse
// @Failure 400 {object} models.PublishErrorResponse
// @Failure 404 {object} map[string]string
// @Security ApiKeyAuth
// @Router /marketplace/publish [post]
func (h *MarketplaceHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var req models.PublishRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.marketplace.Publish(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "publish course")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Unpublish handles POST /marketplace/unpublish
// @Summary Unpublish course
// @Description Hide a public course, clear its slug and reset its upvotes
// @Tags marketplace
// @Accept json
// @Produce json
// @Param request body models.UnpublishRequest true "Course row id and user"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security ApiKeyAuth
// @Router /marketplace/unpublish [post]
func (h *MarketplaceHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	var req models.UnpublishRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.marketplace.Unpublish(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "unpublish course")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// ToggleUpvote handles POST /marketplace/upvote
// @Summary Toggle upvote
// @Description Add the user's upvote to a public course or remove it
// @Tags marketplace
// @Accept json
// @Produce json
// @Param request body models.UpvoteRequest true "Course row id and user"
// @Success 200 {object} models.UpvoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security ApiKeyAuth
// @Router /marketplace/upvote [post]
func (h *MarketplaceHandler) ToggleUpvote(w http.ResponseWriter, r *http.Request) {
	var req models.UpvoteRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.engagement.ToggleUpvote(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "toggle upvote")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// UpvoteStatus handles GET /marketplace/upvote
// @Summary Get upvote status
// @Description Check whether the user upvoted a course
// @Tags marketplace
// @Produce json
// @Param userId query string true "User id"
// @Param studyMaterialId query int true "Course row id"
// @Success 200 {object} models.UpvoteStatusResponse
// @Failure 400 {object} map[string]string
// @Security ApiKeyAuth
// @Router /marketplace/upvote [get]
func (h *MarketplaceHandler) UpvoteStatus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	materialID, err := strconv.Atoi(q.Get("studyMaterialId"))
	if err != nil || materialID < 1 {
		h.RespondError(w, http.StatusBadRequest, "studyMaterialId must be a positive integer")
		return
	}

	resp, err := h.engagement.UpvoteStatus(r.Context(), q.Get("userId"), materialID)
	if err != nil {
		h.RespondServiceError(w, err, "get upvote status")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// ToggleFavorite handles POST /marketplace/favorites
// @Summary Toggle favorite
// @Description Add a course to the user's favorites or remove it
// @Tags marketplace
// @Accept json
// @Produce json
// @Param request body models.FavoriteRequest true "Course and user"
// @Success 200 {object} models.FavoriteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security ApiKeyAuth
// @Router /marketplace/favorites [post]
func (h *MarketplaceHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req models.FavoriteRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.engagement.ToggleFavorite(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "toggle favorite")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Favorites handles GET /marketplace/favorites
// @Summary Get favorites
// @Description With courseId reports whether the course is a favorite, without it lists the user's favorite course ids
// @Tags marketplace
// @Produce json
// @Param userId query string true "User id"
// @Param courseId query string false "Course id"
// @Success 200 {object} models.FavoritesListResponse
// @Success 200 {object} models.FavoriteStatusResponse
// @Failure 400 {object} map[string]string
// @Security ApiKeyAuth
// @Router /marketplace/favorites [get]
func (h *MarketplaceHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID := q.Get("userId")

	if courseID := q.Get("courseId"); courseID != "" {
		resp, err := h.engagement.FavoriteStatus(r.Context(), userID, courseID)
		if err != nil {
			h.RespondServiceError(w, err, "get favorite status")
			return
		}
		h.RespondJSON(w, http.StatusOK, resp)
		return
	}

	resp, err := h.engagement.ListFavorites(r.Context(), userID)
	if err != nil {
		h.RespondServiceError(w, err, "list favorites")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// optionalInt parses an optional integer query value, zero when absent
func (h *MarketplaceHandler) optionalInt(w http.ResponseWriter, raw, name string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, name+" must be an integer")
		return 0, false
	}
	return n, true
}
