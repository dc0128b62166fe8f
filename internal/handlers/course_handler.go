package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyforge/backend/internal/models"
	"go.uber.org/zap"
)

// CourseService is the interface that wraps methods for course generation and management.
type CourseService interface {
	// Method GenerateOutline generates a course layout, stores the course and queues its notes.
	//
	// The creator is charged one credit only after the outline was generated.
	// A creator without credits gets services.ErrNoCredits.
	GenerateOutline(ctx context.Context, req *models.GenerateOutlineRequest) (*models.GenerateOutlineResponse, error)
	// Method List returns a page of the creator's courses, newest first.
	List(ctx context.Context, req *models.ListCoursesRequest) (*models.CourseListResponse, error)
	// Method Get returns a single course by its course id.
	Get(ctx context.Context, courseID string) (*models.Course, error)
	// Method Delete removes a course with all of its content. Only the creator may delete it.
	Delete(ctx context.Context, req *models.DeleteCourseRequest) error
}

// CourseHandler handles course requests
type CourseHandler struct {
	BaseHandler
	service CourseService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(svc CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all course handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *CourseHandler) RegisterRoutes(r chi.Router) {
	r.Route("/courses", func(r chi.Router) {
		r.Post("/outline", h.GenerateOutline)
		r.Post("/", h.List)
		r.Get("/", h.Get)
		r.Post("/delete", h.Delete)
	})
}

// GenerateOutline handles POST /courses/outline
// @Summary Generate course outline
// @Description Generate a course layout with the AI model, store the course as Generating and queue its chapter notes
// @Tags courses
// @Accept json
// @Produce json
// @Param request body models.GenerateOutlineRequest true "Course parameters"
// @Success 200 {object} models.GenerateOutlineResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string "No credits remaining"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "Another outline request is in progress"
// @Failure 502 {object} map[string]string "Generation failed"
// @Security ApiKeyAuth
// @Router /courses/outline [post]
func (h *CourseHandler) GenerateOutline(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateOutlineRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.GenerateOutline(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "generate course outline")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// List handles POST /courses
// @Summary List courses
// @Description Get a page of the creator's courses, newest first
// @Tags courses
// @Accept json
// @Produce json
// @Param request body models.ListCoursesRequest true "Creator and page"
// @Success 200 {object} models.CourseListResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security ApiKeyAuth
// @Router /courses [post]
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	var req models.ListCoursesRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.List(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "list courses")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Get handles GET /courses
// @Summary Get course
// @Description Get a single course by its course id
// @Tags courses
// @Produce json
// @Param courseId query string true "Course id"
// @Success 200 {object} models.CourseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security ApiKeyAuth
// @Router /courses [get]
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	course, err := h.service.Get(r.Context(), r.URL.Query().Get("courseId"))
	if err != nil {
		h.RespondServiceError(w, err, "get course")
		return
	}

	h.RespondJSON(w, http.StatusOK, models.CourseResponse{Result: course})
}

// Delete handles POST /courses/delete
// @Summary Delete course
// @Description Delete a course with its notes, study content, upvotes, favorites and recommendations
// @Tags courses
// @Accept json
// @Produce json
// @Param request body models.DeleteCourseRequest true "Course and requester"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security ApiKeyAuth
// @Router /courses/delete [post]
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteCourseRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Delete(r.Context(), &req); err != nil {
		h.RespondServiceError(w, err, "delete course")
		return
	}

	h.RespondJSON(w, http.StatusOK, models.MessageResponse{Success: true, Message: "Course deleted"})
}
