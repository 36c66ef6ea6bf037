package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/meagherphilip/blogsmith/internal/models"
	"github.com/meagherphilip/blogsmith/internal/service"
)

// MockGenerationService is a mock implementation of GenerationService
type MockGenerationService struct {
	Generations map[string]*models.Generation
	CreateFunc  func(ctx context.Context, req *models.GenerationRequest, authorID string) (*models.Generation, error)
	Started     bool
	Stopped     bool
}

// Verify interface compliance
var _ service.GenerationService = (*MockGenerationService)(nil)

func NewMockGenerationService() *MockGenerationService {
	return &MockGenerationService{
		Generations: make(map[string]*models.Generation),
	}
}

func (m *MockGenerationService) StartProcessor(ctx context.Context) {
	m.Started = true
}

func (m *MockGenerationService) StopProcessor() {
	m.Stopped = true
}

func (m *MockGenerationService) CreateGeneration(ctx context.Context, req *models.GenerationRequest, authorID string) (*models.Generation, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req, authorID)
	}
	gen := &models.Generation{
		ID:       uuid.New().String(),
		Prompt:   req.Topic,
		AuthorID: authorID,
		Status:   models.GenerationStatusPending,
	}
	m.Generations[gen.ID] = gen
	return gen, nil
}

func (m *MockGenerationService) GetGeneration(ctx context.Context, id string) (*models.Generation, error) {
	return m.Generations[id], nil
}

func (m *MockGenerationService) CountByStatus(ctx context.Context) (map[models.GenerationStatus]int, error) {
	counts := make(map[models.GenerationStatus]int)
	for _, gen := range m.Generations {
		counts[gen.Status]++
	}
	return counts, nil
}

// MockContentService is a mock implementation of ContentService
type MockContentService struct {
	Blogs       map[string]*models.Blog
	SlugToBlog  map[string]*models.Blog
	Themes      map[string]*models.Theme
	Posts       map[string]*models.Post
	SeededCount int
}

// Verify interface compliance
var _ service.ContentService = (*MockContentService)(nil)

func NewMockContentService() *MockContentService {
	return &MockContentService{
		Blogs:      make(map[string]*models.Blog),
		SlugToBlog: make(map[string]*models.Blog),
		Themes:     make(map[string]*models.Theme),
		Posts:      make(map[string]*models.Post),
	}
}

func (m *MockContentService) GetBlog(ctx context.Context, id string) (*models.Blog, error) {
	return m.Blogs[id], nil
}

func (m *MockContentService) GetBlogBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	return m.SlugToBlog[slug], nil
}

func (m *MockContentService) ListBlogs(ctx context.Context, status models.BlogStatus) ([]*models.Blog, error) {
	var blogs []*models.Blog
	for _, blog := range m.Blogs {
		if status == "" || blog.Status == status {
			blogs = append(blogs, blog)
		}
	}
	return blogs, nil
}

func (m *MockContentService) CreateTheme(ctx context.Context, theme *models.Theme) error {
	if theme.ID == "" {
		theme.ID = uuid.New().String()
	}
	m.Themes[theme.ID] = theme
	return nil
}

func (m *MockContentService) ListThemes(ctx context.Context) ([]*models.Theme, error) {
	themes := make([]*models.Theme, 0, len(m.Themes))
	for _, theme := range m.Themes {
		themes = append(themes, theme)
	}
	return themes, nil
}

func (m *MockContentService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, len(m.Posts))
	for _, post := range m.Posts {
		posts = append(posts, post)
	}
	return posts, nil
}

func (m *MockContentService) GetPost(ctx context.Context, slug string) (*models.Post, error) {
	return m.Posts[slug], nil
}

func (m *MockContentService) SeedPosts(ctx context.Context) (int, error) {
	return m.SeededCount, nil
}

func (m *MockContentService) Counts(ctx context.Context) (map[string]int, error) {
	return map[string]int{
		"blogs":  len(m.Blogs),
		"themes": len(m.Themes),
		"posts":  len(m.Posts),
	}, nil
}
