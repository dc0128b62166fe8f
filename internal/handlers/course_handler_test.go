package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/studyforge/backend/internal/models"
	"github.com/studyforge/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCourseHandler_GenerateOutline(t *testing.T) {
	req := models.GenerateOutlineRequest{
		CourseID:        "c1",
		Topic:           "Go",
		CourseType:      "coding",
		DifficultyLevel: "Easy",
		CreatedBy:       "a@b.com",
	}

	tests := []struct {
		name           string
		svc            *mockCourseService
		expectedStatus int
	}{
		{
			name: "success",
			svc: &mockCourseService{outline: &models.GenerateOutlineResponse{
				Result:  &models.Course{CourseID: "c1", Status: models.StatusGenerating},
				Credits: 1,
			}},
			expectedStatus: http.StatusOK,
		},
		{name: "no credits", svc: &mockCourseService{err: services.ErrNoCredits}, expectedStatus: http.StatusForbidden},
		{name: "busy", svc: &mockCourseService{err: services.ErrBusy}, expectedStatus: http.StatusConflict},
		{name: "generation failed", svc: &mockCourseService{err: services.ErrGeneration}, expectedStatus: http.StatusBadGateway},
		{name: "store failure", svc: &mockCourseService{err: errors.New("db down")}, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(NewCourseHandler(tt.svc, zap.NewNop()))

			w := doRequest(t, router, http.MethodPost, "/api/v1/courses/outline", req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			require.NotNil(t, tt.svc.lastOutline)
			assert.Equal(t, "c1", tt.svc.lastOutline.CourseID)
			if tt.expectedStatus == http.StatusOK {
				var resp models.GenerateOutlineResponse
				decodeBody(t, w, &resp)
				assert.Equal(t, 1, resp.Credits)
				assert.Equal(t, models.StatusGenerating, resp.Result.Status)
			}
		})
	}
}

func TestCourseHandler_List(t *testing.T) {
	svc := &mockCourseService{list: &models.CourseListResponse{
		Result:     []models.Course{{CourseID: "c2"}, {CourseID: "c1"}},
		Pagination: models.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 2, ItemsPerPage: 6},
	}}
	router := newTestRouter(NewCourseHandler(svc, zap.NewNop()))

	w := doRequest(t, router, http.MethodPost, "/api/v1/courses", models.ListCoursesRequest{CreatedBy: "a@b.com", Page: 1})

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.CourseListResponse
	decodeBody(t, w, &resp)
	assert.Len(t, resp.Result, 2)
	assert.Equal(t, 2, resp.Pagination.TotalItems)
	assert.Equal(t, "a@b.com", svc.lastList.CreatedBy)
}

func TestCourseHandler_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockCourseService{course: &models.Course{CourseID: "c1", Topic: "Go"}}
		router := newTestRouter(NewCourseHandler(svc, zap.NewNop()))

		w := doRequest(t, router, http.MethodGet, "/api/v1/courses?courseId=c1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp models.CourseResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "Go", resp.Result.Topic)
		assert.Equal(t, "c1", svc.lastID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &mockCourseService{err: services.ErrNotFound}
		router := newTestRouter(NewCourseHandler(svc, zap.NewNop()))

		w := doRequest(t, router, http.MethodGet, "/api/v1/courses?courseId=missing", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCourseHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "success", expectedStatus: http.StatusOK},
		{name: "not owner", err: services.ErrForbidden, expectedStatus: http.StatusForbidden},
		{name: "missing course", err: services.ErrNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockCourseService{err: tt.err}
			router := newTestRouter(NewCourseHandler(svc, zap.NewNop()))

			w := doRequest(t, router, http.MethodPost, "/api/v1/courses/delete", models.DeleteCourseRequest{CourseID: "c1", Email: "a@b.com"})

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, &models.DeleteCourseRequest{CourseID: "c1", Email: "a@b.com"}, svc.lastDelete)
			if tt.err == nil {
				var resp models.MessageResponse
				decodeBody(t, w, &resp)
				assert.True(t, resp.Success)
			}
		})
	}
}
