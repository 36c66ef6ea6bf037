package repository

import (
	"context"

	"github.com/meagherphilip/blogsmith/internal/database"
	"github.com/meagherphilip/blogsmith/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}

// BlogRepository defines the interface for blog data operations
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	Update(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*models.Blog, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, status models.BlogStatus) ([]*models.Blog, error)
	Count(ctx context.Context) (int, error)
}

// ThemeRepository defines the interface for theme data operations
type ThemeRepository interface {
	Create(ctx context.Context, theme *models.Theme) error
	GetByID(ctx context.Context, id string) (*models.Theme, error)
	List(ctx context.Context) ([]*models.Theme, error)
	Count(ctx context.Context) (int, error)
}

// GenerationRepository defines the interface for generation job operations.
// Status updates only ever move forward; Claim and the terminal setters are
// guarded by the current status so two workers cannot double-process a job.
type GenerationRepository interface {
	Create(ctx context.Context, gen *models.Generation) error
	GetByID(ctx context.Context, id string) (*models.Generation, error)
	GetPending(ctx context.Context) ([]*models.Generation, error)
	Claim(ctx context.Context, id string, to models.GenerationStatus) (bool, error)
	Transition(ctx context.Context, id string, from, to models.GenerationStatus) (bool, error)
	SetBlogID(ctx context.Context, id, blogID string) error
	Complete(ctx context.Context, id, output string, cost float64) (bool, error)
	Fail(ctx context.Context, id, errMsg string) (bool, error)
	CountByStatus(ctx context.Context) (map[models.GenerationStatus]int, error)
}

// ResearchRepository defines the interface for research snippets
type ResearchRepository interface {
	Create(ctx context.Context, research *models.Research) error
	GetByTopic(ctx context.Context, topic string) (*models.Research, error)
}

// PostRepository defines the interface for legacy demo posts
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetAll(ctx context.Context) ([]*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User       UserRepository
	Blog       BlogRepository
	Theme      ThemeRepository
	Generation GenerationRepository
	Research   ResearchRepository
	Post       PostRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:       NewUserRepo(db),
		Blog:       NewBlogRepo(db),
		Theme:      NewThemeRepo(db),
		Generation: NewGenerationRepo(db),
		Research:   NewResearchRepo(db),
		Post:       NewPostRepo(db),
	}
}
