package handlers

import (
	"context"

	"github.com/studyforge/backend/internal/models"
)

// mockUserService is a mock implementation of UserService
type mockUserService struct {
	user    *models.User
	credits *models.CreditsResponse
	err     error
	lastReq any
}

func (m *mockUserService) Init(ctx context.Context, req *models.InitUserRequest) (*models.User, error) {
	m.lastReq = req
	return m.user, m.err
}

func (m *mockUserService) Credits(ctx context.Context, req *models.CreditsRequest) (*models.CreditsResponse, error) {
	m.lastReq = req
	return m.credits, m.err
}

// mockCourseService is a mock implementation of CourseService
type mockCourseService struct {
	outline     *models.GenerateOutlineResponse
	list        *models.CourseListResponse
	course      *models.Course
	err         error
	lastOutline *models.GenerateOutlineRequest
	lastList    *models.ListCoursesRequest
	lastID      string
	lastDelete  *models.DeleteCourseRequest
}

func (m *mockCourseService) GenerateOutline(ctx context.Context, req *models.GenerateOutlineRequest) (*models.GenerateOutlineResponse, error) {
	m.lastOutline = req
	return m.outline, m.err
}

func (m *mockCourseService) List(ctx context.Context, req *models.ListCoursesRequest) (*models.CourseListResponse, error) {
	m.lastList = req
	return m.list, m.err
}

func (m *mockCourseService) Get(ctx context.Context, courseID string) (*models.Course, error) {
	m.lastID = courseID
	return m.course, m.err
}

func (m *mockCourseService) Delete(ctx context.Context, req *models.DeleteCourseRequest) error {
	m.lastDelete = req
	return m.err
}

// mockStudyContentService is a mock implementation of StudyContentService
type mockStudyContentService struct {
	created       *models.CreateStudyContentResponse
	content       *models.StudyTypeContent
	notes         []models.ChapterNotes
	err           error
	lastCourseID  string
	lastType      string
	lastChapterID int
	notesCalls    int
	contentCalls  int
}

func (m *mockStudyContentService) Request(ctx context.Context, req *models.CreateStudyContentRequest) (*models.CreateStudyContentResponse, error) {
	m.lastCourseID = req.CourseID
	m.lastType = req.Type
	return m.created, m.err
}

func (m *mockStudyContentService) GetContent(ctx context.Context, courseID, rawType string) (*models.StudyTypeContent, error) {
	m.contentCalls++
	m.lastCourseID = courseID
	m.lastType = rawType
	return m.content, m.err
}

func (m *mockStudyContentService) GetNotes(ctx context.Context, courseID string, chapterID int) ([]models.ChapterNotes, error) {
	m.notesCalls++
	m.lastCourseID = courseID
	m.lastChapterID = chapterID
	return m.notes, m.err
}

// mockMarketplaceService is a mock implementation of MarketplaceService
type mockMarketplaceService struct {
	publish   *models.PublishResponse
	message   *models.MessageResponse
	list      *models.MarketplaceListResponse
	course    *models.Course
	err       error
	lastQuery *models.MarketplaceQuery
	lastSlug  string
}

func (m *mockMarketplaceService) Publish(ctx context.Context, req *models.PublishRequest) (*models.PublishResponse, error) {
	return m.publish, m.err
}

func (m *mockMarketplaceService) Unpublish(ctx context.Context, req *models.UnpublishRequest) (*models.MessageResponse, error) {
	return m.message, m.err
}

func (m *mockMarketplaceService) List(ctx context.Context, query *models.MarketplaceQuery) (*models.MarketplaceListResponse, error) {
	m.lastQuery = query
	return m.list, m.err
}

func (m *mockMarketplaceService) GetBySlug(ctx context.Context, slug string) (*models.Course, error) {
	m.lastSlug = slug
	return m.course, m.err
}

// mockEngagementService is a mock implementation of EngagementService
type mockEngagementService struct {
	upvote         *models.UpvoteResponse
	upvoteStatus   *models.UpvoteStatusResponse
	favorite       *models.FavoriteResponse
	favoriteStatus *models.FavoriteStatusResponse
	favorites      *models.FavoritesListResponse
	err            error
	lastUserID     string
	lastMaterialID int
	lastCourseID   string
}

func (m *mockEngagementService) ToggleUpvote(ctx context.Context, req *models.UpvoteRequest) (*models.UpvoteResponse, error) {
	m.lastUserID = req.UserID
	m.lastMaterialID = req.StudyMaterialID
	return m.upvote, m.err
}

func (m *mockEngagementService) UpvoteStatus(ctx context.Context, userID string, materialID int) (*models.UpvoteStatusResponse, error) {
	m.lastUserID = userID
	m.lastMaterialID = materialID
	return m.upvoteStatus, m.err
}

func (m *mockEngagementService) ToggleFavorite(ctx context.Context, req *models.FavoriteRequest) (*models.FavoriteResponse, error) {
	m.lastUserID = req.UserID
	m.lastCourseID = req.CourseID
	return m.favorite, m.err
}

func (m *mockEngagementService) FavoriteStatus(ctx context.Context, userID, courseID string) (*models.FavoriteStatusResponse, error) {
	m.lastUserID = userID
	m.lastCourseID = courseID
	return m.favoriteStatus, m.err
}

func (m *mockEngagementService) ListFavorites(ctx context.Context, userID string) (*models.FavoritesListResponse, error) {
	m.lastUserID = userID
	return m.favorites, m.err
}

// mockPaymentService is a mock implementation of PaymentService
type mockPaymentService struct {
	verify  *models.VerifySessionResponse
	message *models.MessageResponse
	err     error
}

func (m *mockPaymentService) VerifySession(ctx context.Context, req *models.VerifySessionRequest) (*models.VerifySessionResponse, error) {
	return m.verify, m.err
}

func (m *mockPaymentService) Downgrade(ctx context.Context, req *models.DowngradeRequest) (*models.MessageResponse, error) {
	return m.message, m.err
}

// mockRecommendationService is a mock implementation of RecommendationService
type mockRecommendationService struct {
	resp         *models.RecommendationsResponse
	err          error
	lastCourseID string
	generated    int
}

func (m *mockRecommendationService) Get(ctx context.Context, courseID string) (*models.RecommendationsResponse, error) {
	m.lastCourseID = courseID
	return m.resp, m.err
}

func (m *mockRecommendationService) Generate(ctx context.Context, req *models.RecommendationRequest) (*models.RecommendationsResponse, error) {
	m.lastCourseID = req.CourseID
	m.generated++
	return m.resp, m.err
}
