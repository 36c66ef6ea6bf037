package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/meagherphilip/blogsmith/internal/database"
	"github.com/meagherphilip/blogsmith/internal/models"
)

// blogRepo is the concrete implementation of BlogRepository
type blogRepo struct {
	db *database.DB
}

// NewBlogRepo creates a new blog repository
func NewBlogRepo(db *database.DB) BlogRepository {
	return &blogRepo{db: db}
}

// Create inserts a new blog
func (r *blogRepo) Create(ctx context.Context, blog *models.Blog) error {
	query := `
		INSERT INTO blogs (id, title, slug, excerpt, content, status, author_id, theme_id,
			keywords, images, sources, word_count, reading_time, generated_by,
			published_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		blog.ID, blog.Title, blog.Slug, blog.Excerpt, blog.Content, blog.Status,
		blog.AuthorID, blog.ThemeID, blog.Keywords, blog.Images, blog.Sources,
		blog.WordCount, blog.ReadingTime, blog.GeneratedBy,
		blog.PublishedAt, blog.CreatedAt, time.Now(),
	)
	return err
}

// Update writes the mutable blog fields
func (r *blogRepo) Update(ctx context.Context, blog *models.Blog) error {
	query := `
		UPDATE blogs SET
			title = ?, slug = ?, excerpt = ?, content = ?, status = ?,
			keywords = ?, images = ?, sources = ?, word_count = ?, reading_time = ?,
			published_at = ?, updated_at = ?
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query,
		blog.Title, blog.Slug, blog.Excerpt, blog.Content, blog.Status,
		blog.Keywords, blog.Images, blog.Sources, blog.WordCount, blog.ReadingTime,
		blog.PublishedAt, time.Now(), blog.ID,
	)
	return err
}

const blogColumns = `id, title, slug, excerpt, content, status, author_id, theme_id,
	keywords, images, sources, word_count, reading_time, generated_by,
	published_at, created_at, updated_at`

// GetByID retrieves a blog by ID
func (r *blogRepo) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	return r.getOne(ctx, `WHERE id = ?`, id)
}

// GetBySlug retrieves a blog by slug
func (r *blogRepo) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	return r.getOne(ctx, `WHERE slug = ?`, slug)
}

func (r *blogRepo) getOne(ctx context.Context, where string, arg interface{}) (*models.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs ` + where

	var blog models.Blog
	var publishedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&blog.ID, &blog.Title, &blog.Slug, &blog.Excerpt, &blog.Content, &blog.Status,
		&blog.AuthorID, &blog.ThemeID, &blog.Keywords, &blog.Images, &blog.Sources,
		&blog.WordCount, &blog.ReadingTime, &blog.GeneratedBy,
		&publishedAt, &blog.CreatedAt, &blog.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if publishedAt.Valid {
		blog.PublishedAt = &publishedAt.Time
	}
	return &blog, nil
}

// SlugExists reports whether a blog with the slug exists
func (r *blogRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blogs WHERE slug = ?`, slug).Scan(&count)
	return count > 0, err
}

// Count returns the number of blogs
func (r *blogRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blogs`).Scan(&count)
	return count, err
}

// List returns blogs newest first, optionally filtered by status
func (r *blogRepo) List(ctx context.Context, status models.BlogStatus) ([]*models.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []*models.Blog
	for rows.Next() {
		var blog models.Blog
		var publishedAt sql.NullTime
		err := rows.Scan(
			&blog.ID, &blog.Title, &blog.Slug, &blog.Excerpt, &blog.Content, &blog.Status,
			&blog.AuthorID, &blog.ThemeID, &blog.Keywords, &blog.Images, &blog.Sources,
			&blog.WordCount, &blog.ReadingTime, &blog.GeneratedBy,
			&publishedAt, &blog.CreatedAt, &blog.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if publishedAt.Valid {
			blog.PublishedAt = &publishedAt.Time
		}
		blogs = append(blogs, &blog)
	}

	return blogs, rows.Err()
}
