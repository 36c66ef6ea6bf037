package repository

import (
	"context"
	"database/sql"

	"github.com/meagherphilip/blogsmith/internal/database"
	"github.com/meagherphilip/blogsmith/internal/models"
)

// postRepo is the concrete implementation of PostRepository
type postRepo struct {
	db *database.DB
}

// NewPostRepo creates a new post repository
func NewPostRepo(db *database.DB) PostRepository {
	return &postRepo{db: db}
}

// Create inserts a new demo post
func (r *postRepo) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (title, slug, excerpt, content, date, author, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		post.Title, post.Slug, post.Excerpt, post.Content, post.Date, post.Author, post.Tags,
	)
	if err != nil {
		return err
	}
	post.ID, _ = result.LastInsertId()
	return nil
}

// GetAll returns all demo posts newest first
func (r *postRepo) GetAll(ctx context.Context) ([]*models.Post, error) {
	query := `SELECT id, title, slug, excerpt, content, date, author, tags FROM posts ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		err := rows.Scan(&post.ID, &post.Title, &post.Slug, &post.Excerpt,
			&post.Content, &post.Date, &post.Author, &post.Tags)
		if err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}

	return posts, rows.Err()
}

// GetBySlug retrieves a demo post by slug
func (r *postRepo) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	query := `SELECT id, title, slug, excerpt, content, date, author, tags FROM posts WHERE slug = ?`

	var post models.Post
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&post.ID, &post.Title, &post.Slug, &post.Excerpt,
		&post.Content, &post.Date, &post.Author, &post.Tags,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Count returns the number of demo posts
func (r *postRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count)
	return count, err
}
