package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/meagherphilip/blogsmith/internal/generator"
	"github.com/meagherphilip/blogsmith/internal/models"
	"github.com/meagherphilip/blogsmith/internal/repository"
)

// contentService is the concrete implementation of ContentService. It is a
// pure read-through of the store apart from theme creation and post seeding.
type contentService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newContentService(repos *repository.Repositories, log zerolog.Logger) *contentService {
	return &contentService{
		repos: repos,
		log:   log.With().Str("service", "content").Logger(),
	}
}

// GetBlog retrieves a blog by ID
func (s *contentService) GetBlog(ctx context.Context, id string) (*models.Blog, error) {
	return s.repos.Blog.GetByID(ctx, id)
}

// GetBlogBySlug retrieves a blog by slug
func (s *contentService) GetBlogBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	return s.repos.Blog.GetBySlug(ctx, slug)
}

// ListBlogs returns blogs, optionally filtered by status
func (s *contentService) ListBlogs(ctx context.Context, status models.BlogStatus) ([]*models.Blog, error) {
	return s.repos.Blog.List(ctx, status)
}

// CreateTheme stores a new theme, filling in id, slug and timestamp
func (s *contentService) CreateTheme(ctx context.Context, theme *models.Theme) error {
	if theme.Name == "" {
		return fmt.Errorf("theme name is required")
	}
	theme.ID = uuid.New().String()
	if theme.Slug == "" {
		theme.Slug = generator.Slugify(theme.Name)
	}
	if theme.Settings == "" {
		theme.Settings = "{}"
	}
	theme.CreatedAt = time.Now()
	return s.repos.Theme.Create(ctx, theme)
}

// ListThemes returns all themes
func (s *contentService) ListThemes(ctx context.Context) ([]*models.Theme, error) {
	return s.repos.Theme.List(ctx)
}

// ListPosts returns all legacy demo posts
func (s *contentService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.repos.Post.GetAll(ctx)
}

// GetPost retrieves a legacy demo post by slug
func (s *contentService) GetPost(ctx context.Context, slug string) (*models.Post, error) {
	return s.repos.Post.GetBySlug(ctx, slug)
}

// SeedPosts inserts the fixed demo posts when the table is empty. Returns
// the number of posts inserted.
func (s *contentService) SeedPosts(ctx context.Context) (int, error) {
	count, err := s.repos.Post.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for i := range seedPosts {
		post := seedPosts[i]
		if err := s.repos.Post.Create(ctx, &post); err != nil {
			return i, fmt.Errorf("seed post %q: %w", post.Slug, err)
		}
	}

	s.log.Info().Int("count", len(seedPosts)).Msg("Seeded demo posts")
	return len(seedPosts), nil
}

// Counts returns row counts for the content tables
func (s *contentService) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for name, count := range map[string]func(context.Context) (int, error){
		"blogs":  s.repos.Blog.Count,
		"themes": s.repos.Theme.Count,
		"posts":  s.repos.Post.Count,
	} {
		n, err := count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}
