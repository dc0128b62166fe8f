package models

import "time"

// YouTubeVideo is a search hit from the video provider
type YouTubeVideo struct {
	VideoID      string
	Title        string
	Description  string
	ChannelTitle string
	ThumbnailURL string
	PublishedAt  time.Time
}

// YouTubeRecommendation is a cached, ranked video suggestion for a course
type YouTubeRecommendation struct {
	ID              int       `json:"id"`
	CourseID        string    `json:"courseId"`
	VideoID         string    `json:"videoId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ChannelTitle    string    `json:"channelTitle"`
	ThumbnailURL    string    `json:"thumbnailUrl"`
	PublishedAt     time.Time `json:"publishedAt"`
	SimilarityScore int       `json:"similarityScore"`
}

// RecommendationRequest represents a request to build recommendations for a course
type RecommendationRequest struct {
	CourseID string `json:"courseId" validate:"required"`
	Topic    string `json:"topic" validate:"required"`
}

// RecommendationsResponse wraps cached recommendations
type RecommendationsResponse struct {
	Recommendations []YouTubeRecommendation `json:"recommendations"`
}
