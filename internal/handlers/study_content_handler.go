package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/studyforge/backend/internal/models"
	"go.uber.org/zap"
)

// StudyContentService is the interface that wraps methods for generated study content.
type StudyContentService interface {
	// Method Request stores a Generating record and queues its generation.
	// Only Flashcard, Quiz and QA can be requested.
	Request(ctx context.Context, req *models.CreateStudyContentRequest) (*models.CreateStudyContentResponse, error)
	// Method GetContent returns the newest record of a generated type for a course.
	GetContent(ctx context.Context, courseID, rawType string) (*models.StudyTypeContent, error)
	// Method GetNotes returns all chapter notes of a course, or one chapter when chapterID is positive.
	GetNotes(ctx context.Context, courseID string, chapterID int) ([]models.ChapterNotes, error)
}

// StudyContentHandler handles study content requests
type StudyContentHandler struct {
	BaseHandler
	service StudyContentService
}

// NewStudyContentHandler creates a new study content handler
func NewStudyContentHandler(svc StudyContentService, logger *zap.Logger) *StudyContentHandler {
	return &StudyContentHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all study content handler routes
func (h *StudyContentHandler) RegisterRoutes(r chi.Router) {
	r.Post("/study-type-content", h.Request)
	r.Get("/study-type-content", h.Get)
	r.Get("/notes", h.ListNotes)
}

// Request handles POST /study-type-content
// @Summary Request study content
// @Description Store a Generating flashcard, quiz or QA record and queue its generation. Poll GET /study-type-content for the result.
// @Tags study-content
// @Accept json
// @Produce json
// @Param request body models.CreateStudyContentRequest true "Course, type and chapter titles"
// @Success 200 {object} models.CreateStudyContentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security ApiKeyAuth
// @Router /study-type-content [post]
func (h *StudyContentHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStudyContentRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Request(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "request study content")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Get handles GET /study-type-content
// @Summary Get study content
// @Description Get the newest flashcard, quiz or QA record of a course. With type=notes returns chapter notes instead, optionally for one chapter.
// @Tags study-content
// @Produce json
// @Param courseId query string true "Course id"
// @Param type query string true "Flashcard, Quiz, QA or notes"
// @Param chapterId query int false "Chapter number, notes only"
// @Success 200 {object} models.StudyTypeContent
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security ApiKeyAuth
// @Router /study-type-content [get]
func (h *StudyContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	if t, _ := models.ParseStudyType(query.Type); t == models.StudyTypeNotes {
		notes, err := h.service.GetNotes(r.Context(), query.CourseID, query.ChapterID)
		if err != nil {
			h.RespondServiceError(w, err, "get chapter notes")
			return
		}
		h.RespondJSON(w, http.StatusOK, notes)
		return
	}

	content, err := h.service.GetContent(r.Context(), query.CourseID, query.Type)
	if err != nil {
		h.RespondServiceError(w, err, "get study content")
		return
	}

	h.RespondJSON(w, http.StatusOK, content)
}

// ListNotes handles GET /notes
// @Summary List chapter notes
// @Description Get all chapter notes of a course
// @Tags study-content
// @Produce json
// @Param courseId query string true "Course id"
// @Success 200 {array} models.ChapterNotes
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security ApiKeyAuth
// @Router /notes [get]
func (h *StudyContentHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.service.GetNotes(r.Context(), r.URL.Query().Get("courseId"), 0)
	if err != nil {
		h.RespondServiceError(w, err, "list chapter notes")
		return
	}

	h.RespondJSON(w, http.StatusOK, notes)
}

func (h *StudyContentHandler) parseQuery(w http.ResponseWriter, r *http.Request) (*models.StudyContentQuery, bool) {
	q := r.URL.Query()
	query := &models.StudyContentQuery{
		CourseID: q.Get("courseId"),
		Type:     q.Get("type"),
	}

	if raw := q.Get("chapterId"); raw != "" {
		chapterID, err := strconv.Atoi(raw)
		if err != nil || chapterID < 1 {
			h.RespondError(w, http.StatusBadRequest, "chapterId must be a positive integer")
			return nil, false
		}
		query.ChapterID = chapterID
	}

	return query, true
}
