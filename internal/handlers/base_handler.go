package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/studyforge/backend/internal/models"
	"github.com/studyforge/backend/internal/services"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// DecodeJSON reads the request body into v and answers 400 on failure
func (h *BaseHandler) DecodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// RespondServiceError maps a service error to its HTTP status
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, err error, action string) {
	var incomplete *services.IncompleteContentError
	var generating *services.StillGeneratingError

	switch {
	case errors.As(err, &incomplete):
		h.RespondJSON(w, http.StatusBadRequest, models.PublishErrorResponse{
			Error:          "Missing required content",
			MissingContent: incomplete.Types,
		})
	case errors.As(err, &generating):
		h.RespondJSON(w, http.StatusBadRequest, models.PublishErrorResponse{
			Error:             "Content is still generating",
			GeneratingContent: generating.Types,
		})
	case errors.Is(err, services.ErrValidation):
		h.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		h.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrForbidden):
		h.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNoCredits):
		h.RespondError(w, http.StatusForbidden, "no credits remaining, upgrade to continue")
	case errors.Is(err, services.ErrBusy):
		h.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrGeneration):
		h.Logger.Warn("generation failed", zap.String("action", action), zap.Error(err))
		h.RespondError(w, http.StatusBadGateway, "content generation failed, please try again")
	default:
		h.Logger.Error("request failed", zap.String("action", action), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to "+action)
	}
}
