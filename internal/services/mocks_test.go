package services

import (
	"context"
	"sync"
	"time"

	"github.com/studyforge/backend/internal/jobs"
	"github.com/studyforge/backend/internal/lock"
	"github.com/studyforge/backend/internal/models"
	"github.com/studyforge/backend/internal/repositories"
)

// mockUserRepository is a mock implementation of UserRepository and LedgerRepository
type mockUserRepository struct {
	users       map[string]*models.User
	getErr      error
	createErr   error
	debitErr    error
	grantErr    error
	revokeErr   error
	created     []*models.User
	debits      int
	grants      int
	revocations int
}

func newMockUserRepository(users ...*models.User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[string]*models.User)}
	for _, u := range users {
		m.users[u.Email] = u
	}
	return m
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	u, ok := m.users[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = len(m.users) + 1
	m.users[user.Email] = user
	m.created = append(m.created, user)
	return nil
}

func (m *mockUserRepository) DebitCredit(ctx context.Context, email string) (bool, error) {
	if m.debitErr != nil {
		return false, m.debitErr
	}
	u, ok := m.users[email]
	if !ok || u.IsMember || u.Credits <= 0 {
		return false, nil
	}
	u.Credits--
	m.debits++
	return true, nil
}

func (m *mockUserRepository) GrantMembership(ctx context.Context, email, customerID string, credits int) error {
	if m.grantErr != nil {
		return m.grantErr
	}
	u, ok := m.users[email]
	if !ok {
		return repositories.ErrNotFound
	}
	u.IsMember = true
	u.Credits = credits
	u.PlanType = models.PlanPremium
	u.CustomerID = &customerID
	m.grants++
	return nil
}

func (m *mockUserRepository) RevokeMembership(ctx context.Context, email string, credits int) error {
	if m.revokeErr != nil {
		return m.revokeErr
	}
	u, ok := m.users[email]
	if !ok {
		return repositories.ErrNotFound
	}
	u.IsMember = false
	u.Credits = credits
	u.PlanType = models.PlanFree
	m.revocations++
	return nil
}

// mockCourseRepository is a mock implementation of CourseRepository and MarketplaceRepository
type mockCourseRepository struct {
	courses      map[string]*models.Course
	getErr       error
	createErr    error
	deleteErr    error
	publishErrs  []error
	publishOK    bool
	publishSlugs []string
	unpublished  []string
	deleted      []string
	transitions  []models.GenerationStatus
	listed       []models.Course
	total        int
	lastLimit    int
	lastOffset   int
	lastSort     models.MarketplaceSort
}

func newMockCourseRepository(courses ...*models.Course) *mockCourseRepository {
	m := &mockCourseRepository{courses: make(map[string]*models.Course)}
	for _, c := range courses {
		m.courses[c.CourseID] = c
	}
	return m
}

func (m *mockCourseRepository) Create(ctx context.Context, course *models.Course) error {
	if m.createErr != nil {
		return m.createErr
	}
	course.ID = len(m.courses) + 1
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepository) GetByCourseID(ctx context.Context, courseID string) (*models.Course, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	c, ok := m.courses[courseID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return c, nil
}

func (m *mockCourseRepository) GetByID(ctx context.Context, id int) (*models.Course, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, c := range m.courses {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockCourseRepository) GetPublicBySlug(ctx context.Context, slug string) (*models.Course, error) {
	for _, c := range m.courses {
		if c.IsPublic && c.PublicSlug != nil && *c.PublicSlug == slug {
			return c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockCourseRepository) ListByCreator(ctx context.Context, createdBy string, limit, offset int) ([]models.Course, error) {
	m.lastLimit, m.lastOffset = limit, offset
	return m.listed, nil
}

func (m *mockCourseRepository) CountByCreator(ctx context.Context, createdBy string) (int, error) {
	return m.total, nil
}

func (m *mockCourseRepository) ListPublic(ctx context.Context, search string, sortBy models.MarketplaceSort, limit, offset int) ([]models.Course, error) {
	m.lastLimit, m.lastOffset, m.lastSort = limit, offset, sortBy
	return m.listed, nil
}

func (m *mockCourseRepository) CountPublic(ctx context.Context, search string) (int, error) {
	return m.total, nil
}

func (m *mockCourseRepository) TransitionStatus(ctx context.Context, courseID string, from, to models.GenerationStatus) (bool, error) {
	m.transitions = append(m.transitions, to)
	if c, ok := m.courses[courseID]; ok && c.Status == from {
		c.Status = to
		return true, nil
	}
	return false, nil
}

func (m *mockCourseRepository) Publish(ctx context.Context, id int, slug string) (bool, error) {
	m.publishSlugs = append(m.publishSlugs, slug)
	if len(m.publishErrs) > 0 {
		err := m.publishErrs[0]
		m.publishErrs = m.publishErrs[1:]
		if err != nil {
			return false, err
		}
	}
	if !m.publishOK {
		return false, nil
	}
	for _, c := range m.courses {
		if c.ID == id {
			c.IsPublic = true
			c.PublicSlug = &slug
		}
	}
	return true, nil
}

func (m *mockCourseRepository) Unpublish(ctx context.Context, course *models.Course) error {
	m.unpublished = append(m.unpublished, course.CourseID)
	return nil
}

func (m *mockCourseRepository) DeleteCascade(ctx context.Context, course *models.Course) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, course.CourseID)
	delete(m.courses, course.CourseID)
	return nil
}

// mockOutlineGenerator returns a canned layout
type mockOutlineGenerator struct {
	layout *models.CourseLayout
	err    error
	calls  int
}

func (m *mockOutlineGenerator) Outline(ctx context.Context, topic, courseType, difficulty string) (*models.CourseLayout, error) {
	m.calls++
	return m.layout, m.err
}

// mockEnqueuer is a mock implementation of every enqueuer interface
type mockEnqueuer struct {
	err         error
	notes       []string
	studyTypes  []jobs.StudyTypeContentPayload
	memberships []string
}

func (m *mockEnqueuer) EnqueueGenerateNotes(ctx context.Context, course *models.Course) error {
	m.notes = append(m.notes, course.CourseID)
	return m.err
}

func (m *mockEnqueuer) EnqueueStudyTypeContent(ctx context.Context, payload jobs.StudyTypeContentPayload) error {
	m.studyTypes = append(m.studyTypes, payload)
	return m.err
}

func (m *mockEnqueuer) EnqueueMembershipEmail(ctx context.Context, email string) error {
	m.memberships = append(m.memberships, email)
	return m.err
}

// mockLocker grants every lock unless err is set
type mockLocker struct {
	mu       sync.Mutex
	err      error
	keys     []string
	released int
}

func (m *mockLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (lock.ReleaseFunc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, key)
	if m.err != nil {
		return nil, m.err
	}
	return func(ctx context.Context) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.released++
		return nil
	}, nil
}

// mockStudyContentRepository is a mock implementation of StudyContentRepository
// and ContentStatusRepository
type mockStudyContentRepository struct {
	records   []models.StudyTypeContent
	createErr error
	marked    []int
}

func (m *mockStudyContentRepository) Create(ctx context.Context, content *models.StudyTypeContent) error {
	if m.createErr != nil {
		return m.createErr
	}
	content.ID = len(m.records) + 1
	m.records = append(m.records, *content)
	return nil
}

func (m *mockStudyContentRepository) GetLatest(ctx context.Context, courseID string, studyType models.StudyType) (*models.StudyTypeContent, error) {
	for i := len(m.records) - 1; i >= 0; i-- {
		if m.records[i].CourseID == courseID && m.records[i].Type == studyType {
			rec := m.records[i]
			return &rec, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockStudyContentRepository) MarkError(ctx context.Context, id int) (bool, error) {
	m.marked = append(m.marked, id)
	return true, nil
}

func (m *mockStudyContentRepository) ListStatuses(ctx context.Context, courseID string) ([]models.StudyTypeContent, error) {
	var out []models.StudyTypeContent
	for _, rec := range m.records {
		if rec.CourseID == courseID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// mockNotesRepository is a mock implementation of ChapterNotesRepository
type mockNotesRepository struct {
	notes []models.ChapterNotes
}

func (m *mockNotesRepository) GetByCourseAndChapter(ctx context.Context, courseID string, chapterID int) (*models.ChapterNotes, error) {
	for _, n := range m.notes {
		if n.CourseID == courseID && n.ChapterID == chapterID {
			found := n
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockNotesRepository) ListByCourse(ctx context.Context, courseID string) ([]models.ChapterNotes, error) {
	out := []models.ChapterNotes{}
	for _, n := range m.notes {
		if n.CourseID == courseID {
			out = append(out, n)
		}
	}
	return out, nil
}

// mockPaymentRepository is an in-memory checkout ledger
type mockPaymentRepository struct {
	sessions  map[string]bool
	existsErr error
}

func (m *mockPaymentRepository) ExistsBySessionID(ctx context.Context, sessionID string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.sessions[sessionID], nil
}

func (m *mockPaymentRepository) Create(ctx context.Context, record *models.PaymentRecord) (bool, error) {
	if m.sessions == nil {
		m.sessions = make(map[string]bool)
	}
	if m.sessions[record.SessionID] {
		return false, nil
	}
	m.sessions[record.SessionID] = true
	return true, nil
}

// mockBilling is a mock implementation of BillingProvider
type mockBilling struct {
	session   *models.CheckoutSession
	getErr    error
	cancelErr error
	lookups   int
	cancelled []string
}

func (m *mockBilling) GetCheckoutSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	m.lookups++
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.session, nil
}

func (m *mockBilling) CancelActiveSubscription(ctx context.Context, customerID string) error {
	m.cancelled = append(m.cancelled, customerID)
	return m.cancelErr
}
