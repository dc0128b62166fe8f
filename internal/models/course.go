package models

import "time"

// GenerationStatus represents the progress of generated content
type GenerationStatus string

const (
	StatusGenerating GenerationStatus = "Generating"
	StatusReady      GenerationStatus = "Ready"
	StatusError      GenerationStatus = "Error"
)

// Chapter represents one chapter of a generated course layout
type Chapter struct {
	ChapterTitle   string   `json:"chapterTitle" validate:"required"`
	ChapterSummary string   `json:"chapterSummary"`
	Emoji          string   `json:"emoji"`
	Topics         []string `json:"topics"`
}

// CourseLayout represents the generated outline of a course
type CourseLayout struct {
	CourseTitle   string    `json:"courseTitle" validate:"required"`
	CourseSummary string    `json:"courseSummary"`
	Chapters      []Chapter `json:"chapters" validate:"required,min=1,dive"`
}

// Course represents a generated study material
type Course struct {
	ID              int              `json:"id"`
	CourseID        string           `json:"courseId"`
	CourseType      string           `json:"courseType"`
	Topic           string           `json:"topic"`
	DifficultyLevel string           `json:"difficultyLevel"`
	CourseLayout    *CourseLayout    `json:"courseLayout"`
	CreatedBy       string           `json:"createdBy"`
	Status          GenerationStatus `json:"status"`
	IsPublic        bool             `json:"isPublic"`
	PublicSlug      *string          `json:"publicSlug"`
	Upvotes         int              `json:"upvotes"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// GenerateOutlineRequest represents a request to generate a new course
type GenerateOutlineRequest struct {
	CourseID        string `json:"courseId" validate:"required,max=64"`
	Topic           string `json:"topic" validate:"required,max=1000"`
	CourseType      string `json:"courseType" validate:"required,max=100"`
	DifficultyLevel string `json:"difficultyLevel" validate:"required,max=50"`
	CreatedBy       string `json:"createdBy" validate:"required,email"`
}

// GenerateOutlineResponse represents the created course with the caller's new balance
type GenerateOutlineResponse struct {
	Result   *Course `json:"result"`
	Credits  int     `json:"credits"`
	IsMember bool    `json:"isMember"`
}

// ListCoursesRequest represents a request to list a creator's courses
type ListCoursesRequest struct {
	CreatedBy string `json:"createdBy" validate:"required,email"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
}

// Pagination describes a page of a list response
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNext      bool `json:"hasNext"`
	HasPrev      bool `json:"hasPrev"`
}

// NewPagination computes the page block for total items split by limit
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNext:      page < totalPages,
		HasPrev:      page > 1,
	}
}

// CourseListResponse represents a page of courses
type CourseListResponse struct {
	Result     []Course   `json:"result"`
	Pagination Pagination `json:"pagination"`
}

// CourseResponse wraps a single course
type CourseResponse struct {
	Result *Course `json:"result"`
}

// DeleteCourseRequest represents an owner's request to delete a course
type DeleteCourseRequest struct {
	CourseID string `json:"courseId" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// MessageResponse is a generic acknowledgement
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
