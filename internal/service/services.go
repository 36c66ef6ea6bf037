package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/meagherphilip/blogsmith/internal/ai"
	"github.com/meagherphilip/blogsmith/internal/config"
	"github.com/meagherphilip/blogsmith/internal/generator"
	"github.com/meagherphilip/blogsmith/internal/models"
	"github.com/meagherphilip/blogsmith/internal/repository"
	"github.com/meagherphilip/blogsmith/internal/research"
)

// GenerationService manages generation jobs and the background worker that
// processes them
type GenerationService interface {
	StartProcessor(ctx context.Context)
	StopProcessor()
	CreateGeneration(ctx context.Context, req *models.GenerationRequest, authorID string) (*models.Generation, error)
	GetGeneration(ctx context.Context, id string) (*models.Generation, error)
	CountByStatus(ctx context.Context) (map[models.GenerationStatus]int, error)
}

// ContentService serves stored articles, themes and legacy posts
type ContentService interface {
	GetBlog(ctx context.Context, id string) (*models.Blog, error)
	GetBlogBySlug(ctx context.Context, slug string) (*models.Blog, error)
	ListBlogs(ctx context.Context, status models.BlogStatus) ([]*models.Blog, error)
	CreateTheme(ctx context.Context, theme *models.Theme) error
	ListThemes(ctx context.Context) ([]*models.Theme, error)
	ListPosts(ctx context.Context) ([]*models.Post, error)
	GetPost(ctx context.Context, slug string) (*models.Post, error)
	SeedPosts(ctx context.Context) (int, error)
	Counts(ctx context.Context) (map[string]int, error)
}

// Services holds all service interfaces
type Services struct {
	Generation GenerationService
	Content    ContentService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, aiClient ai.Client, collector *research.Collector, log zerolog.Logger) *Services {
	pipeline := generator.New(repos, collector, aiClient, log)

	return &Services{
		Generation: newGenerationService(repos.Generation, pipeline, cfg, aiClient.Model(), log),
		Content:    newContentService(repos, log),
	}
}
