package mocks

import (
	"context"
	"sync"

	"github.com/meagherphilip/blogsmith/internal/models"
	"github.com/meagherphilip/blogsmith/internal/repository"
)

var (
	_ repository.UserRepository       = (*MockUserRepository)(nil)
	_ repository.BlogRepository       = (*MockBlogRepository)(nil)
	_ repository.ThemeRepository      = (*MockThemeRepository)(nil)
	_ repository.GenerationRepository = (*MockGenerationRepository)(nil)
	_ repository.ResearchRepository   = (*MockResearchRepository)(nil)
	_ repository.PostRepository       = (*MockPostRepository)(nil)
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users       map[string]*models.User
	EmailToUser map[string]*models.User
	CreateError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:       make(map[string]*models.User),
		EmailToUser: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Users[user.ID] = user
	m.EmailToUser[user.Email] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.Users[id], nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.EmailToUser[email], nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	return len(m.Users), nil
}

// MockBlogRepository is a mock implementation of BlogRepository. Writers run
// on pipeline goroutines, so all access is guarded and reads return copies.
type MockBlogRepository struct {
	mu          sync.Mutex
	Blogs       map[string]*models.Blog
	SlugToBlog  map[string]*models.Blog
	CreateError error
	UpdateError error
}

func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{
		Blogs:      make(map[string]*models.Blog),
		SlugToBlog: make(map[string]*models.Blog),
	}
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateError != nil {
		return m.CreateError
	}
	stored := *blog
	m.Blogs[blog.ID] = &stored
	m.SlugToBlog[blog.Slug] = &stored
	return nil
}

func (m *MockBlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateError != nil {
		return m.UpdateError
	}
	stored := *blog
	m.Blogs[blog.ID] = &stored
	m.SlugToBlog[blog.Slug] = &stored
	return nil
}

func (m *MockBlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyBlog(m.Blogs[id]), nil
}

func (m *MockBlogRepository) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyBlog(m.SlugToBlog[slug]), nil
}

func (m *MockBlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, exists := m.SlugToBlog[slug]
	return exists, nil
}

func (m *MockBlogRepository) List(ctx context.Context, status models.BlogStatus) ([]*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var blogs []*models.Blog
	for _, blog := range m.Blogs {
		if status == "" || blog.Status == status {
			blogs = append(blogs, copyBlog(blog))
		}
	}
	return blogs, nil
}

func (m *MockBlogRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Blogs), nil
}

func copyBlog(blog *models.Blog) *models.Blog {
	if blog == nil {
		return nil
	}
	c := *blog
	return &c
}

// MockThemeRepository is a mock implementation of ThemeRepository
type MockThemeRepository struct {
	Themes      map[string]*models.Theme
	CreateError error
}

func NewMockThemeRepository() *MockThemeRepository {
	return &MockThemeRepository{
		Themes: make(map[string]*models.Theme),
	}
}

func (m *MockThemeRepository) Create(ctx context.Context, theme *models.Theme) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Themes[theme.ID] = theme
	return nil
}

func (m *MockThemeRepository) GetByID(ctx context.Context, id string) (*models.Theme, error) {
	return m.Themes[id], nil
}

func (m *MockThemeRepository) List(ctx context.Context) ([]*models.Theme, error) {
	themes := make([]*models.Theme, 0, len(m.Themes))
	for _, theme := range m.Themes {
		themes = append(themes, theme)
	}
	return themes, nil
}

func (m *MockThemeRepository) Count(ctx context.Context) (int, error) {
	return len(m.Themes), nil
}

// MockGenerationRepository is a mock implementation of GenerationRepository.
// Claim and Transition enforce the same forward-only rules as the real
// repository, and all access is mutex-guarded with reads returning copies,
// so worker tests exercise claim contention under the race detector.
type MockGenerationRepository struct {
	mu          sync.Mutex
	Generations map[string]*models.Generation
	CreateError error
}

func NewMockGenerationRepository() *MockGenerationRepository {
	return &MockGenerationRepository{
		Generations: make(map[string]*models.Generation),
	}
}

func (m *MockGenerationRepository) Create(ctx context.Context, gen *models.Generation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateError != nil {
		return m.CreateError
	}
	stored := *gen
	m.Generations[gen.ID] = &stored
	return nil
}

func (m *MockGenerationRepository) GetByID(ctx context.Context, id string) (*models.Generation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyGeneration(m.Generations[id]), nil
}

func (m *MockGenerationRepository) GetPending(ctx context.Context) ([]*models.Generation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var pending []*models.Generation
	for _, gen := range m.Generations {
		if gen.Status == models.GenerationStatusPending {
			pending = append(pending, copyGeneration(gen))
		}
	}
	return pending, nil
}

func (m *MockGenerationRepository) Claim(ctx context.Context, id string, to models.GenerationStatus) (bool, error) {
	return m.Transition(ctx, id, models.GenerationStatusPending, to)
}

func (m *MockGenerationRepository) Transition(ctx context.Context, id string, from, to models.GenerationStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	gen, exists := m.Generations[id]
	if !exists || gen.Status != from || !from.CanTransition(to) {
		return false, nil
	}
	gen.Status = to
	return true, nil
}

func (m *MockGenerationRepository) SetBlogID(ctx context.Context, id, blogID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen, exists := m.Generations[id]; exists {
		gen.BlogID = blogID
	}
	return nil
}

func (m *MockGenerationRepository) Complete(ctx context.Context, id, output string, cost float64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	gen, exists := m.Generations[id]
	if !exists || gen.Status != models.GenerationStatusWriting {
		return false, nil
	}
	gen.Status = models.GenerationStatusCompleted
	gen.Output = output
	gen.Cost = cost
	return true, nil
}

func (m *MockGenerationRepository) Fail(ctx context.Context, id, errMsg string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	gen, exists := m.Generations[id]
	if !exists || gen.Status.Terminal() {
		return false, nil
	}
	gen.Status = models.GenerationStatusFailed
	gen.Error = errMsg
	return true, nil
}

func (m *MockGenerationRepository) CountByStatus(ctx context.Context) (map[models.GenerationStatus]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[models.GenerationStatus]int)
	for _, gen := range m.Generations {
		counts[gen.Status]++
	}
	return counts, nil
}

// Seed stores a generation directly, bypassing Create error injection
func (m *MockGenerationRepository) Seed(gen *models.Generation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *gen
	m.Generations[gen.ID] = &stored
}

func copyGeneration(gen *models.Generation) *models.Generation {
	if gen == nil {
		return nil
	}
	c := *gen
	return &c
}

// MockResearchRepository is a mock implementation of ResearchRepository
type MockResearchRepository struct {
	ByTopic     map[string]*models.Research
	CreateError error
}

func NewMockResearchRepository() *MockResearchRepository {
	return &MockResearchRepository{
		ByTopic: make(map[string]*models.Research),
	}
}

func (m *MockResearchRepository) Create(ctx context.Context, research *models.Research) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.ByTopic[research.Topic] = research
	return nil
}

func (m *MockResearchRepository) GetByTopic(ctx context.Context, topic string) (*models.Research, error) {
	return m.ByTopic[topic], nil
}

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	Posts       map[string]*models.Post
	CreateError error
	nextID      int64
}

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{
		Posts: make(map[string]*models.Post),
	}
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.nextID++
	post.ID = m.nextID
	m.Posts[post.Slug] = post
	return nil
}

func (m *MockPostRepository) GetAll(ctx context.Context) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, len(m.Posts))
	for _, post := range m.Posts {
		posts = append(posts, post)
	}
	return posts, nil
}

func (m *MockPostRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return m.Posts[slug], nil
}

func (m *MockPostRepository) Count(ctx context.Context) (int, error) {
	return len(m.Posts), nil
}

// NewRepositories bundles fresh mocks into a repository set
func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		User:       NewMockUserRepository(),
		Blog:       NewMockBlogRepository(),
		Theme:      NewMockThemeRepository(),
		Generation: NewMockGenerationRepository(),
		Research:   NewMockResearchRepository(),
		Post:       NewMockPostRepository(),
	}
}
