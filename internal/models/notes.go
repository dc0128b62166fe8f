package models

// ChapterNotes represents generated HTML notes for one chapter of a course
type ChapterNotes struct {
	ID        int    `json:"id"`
	CourseID  string `json:"courseId"`
	ChapterID int    `json:"chapterId"`
	Notes     string `json:"notes"`
}
