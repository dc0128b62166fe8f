package models

// MarketplaceSort enumerates marketplace orderings
type MarketplaceSort string

const (
	SortNewest  MarketplaceSort = "newest"
	SortOldest  MarketplaceSort = "oldest"
	SortPopular MarketplaceSort = "popular"
	SortTitle   MarketplaceSort = "title"
)

// PublishRequest represents a request to make a course public
type PublishRequest struct {
	StudyMaterialID int `json:"studyMaterialId" validate:"required,gt=0"`
}

// PublishResponse represents a successful publish
type PublishResponse struct {
	Success    bool   `json:"success"`
	PublicSlug string `json:"publicSlug"`
	Message    string `json:"message"`
}

// PublishErrorResponse explains why publishing was refused
type PublishErrorResponse struct {
	Error             string      `json:"error"`
	MissingContent    []StudyType `json:"missingContent,omitempty"`
	GeneratingContent []StudyType `json:"generatingContent,omitempty"`
}

// UnpublishRequest represents a request to withdraw a course from the marketplace
type UnpublishRequest struct {
	StudyMaterialID int    `json:"studyMaterialId" validate:"required,gt=0"`
	UserID          string `json:"userId" validate:"required"`
}

// UpvoteRequest represents a request to toggle an upvote
type UpvoteRequest struct {
	StudyMaterialID int    `json:"studyMaterialId" validate:"required,gt=0"`
	UserID          string `json:"userId" validate:"required"`
}

// UpvoteResponse represents the state after an upvote toggle
type UpvoteResponse struct {
	Success   bool   `json:"success"`
	Upvotes   int    `json:"upvotes"`
	IsUpvoted bool   `json:"isUpvoted"`
	Message   string `json:"message"`
}

// UpvoteStatusResponse reports whether a user upvoted a material
type UpvoteStatusResponse struct {
	IsUpvoted bool `json:"isUpvoted"`
}

// FavoriteRequest represents a request to toggle a favorite
type FavoriteRequest struct {
	CourseID string `json:"courseId" validate:"required"`
	UserID   string `json:"userId" validate:"required"`
}

// FavoriteResponse represents the state after a favorite toggle
type FavoriteResponse struct {
	Success   bool   `json:"success"`
	Favorited bool   `json:"favorited"`
	Message   string `json:"message"`
}

// FavoriteStatusResponse reports whether a user favorited a course
type FavoriteStatusResponse struct {
	Favorited bool `json:"favorited"`
}

// FavoritesListResponse lists the courses a user favorited
type FavoritesListResponse struct {
	Favorites []string `json:"favorites"`
}

// MarketplaceQuery filters and pages the public catalogue
type MarketplaceQuery struct {
	Page   int
	Limit  int
	Search string
	SortBy MarketplaceSort
}

// MarketplaceListResponse represents a page of public courses
type MarketplaceListResponse struct {
	Courses    []Course   `json:"courses"`
	Pagination Pagination `json:"pagination"`
}
