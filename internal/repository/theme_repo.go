package repository

import (
	"context"
	"database/sql"

	"github.com/meagherphilip/blogsmith/internal/database"
	"github.com/meagherphilip/blogsmith/internal/models"
)

// themeRepo is the concrete implementation of ThemeRepository
type themeRepo struct {
	db *database.DB
}

// NewThemeRepo creates a new theme repository
func NewThemeRepo(db *database.DB) ThemeRepository {
	return &themeRepo{db: db}
}

// Create inserts a new theme
func (r *themeRepo) Create(ctx context.Context, theme *models.Theme) error {
	query := `
		INSERT INTO themes (id, name, slug, keywords, tone, target_audience, settings,
			created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		theme.ID, theme.Name, theme.Slug, theme.Keywords, theme.Tone,
		theme.TargetAudience, theme.Settings, theme.CreatedBy, theme.CreatedAt,
	)
	return err
}

// GetByID retrieves a theme by ID
func (r *themeRepo) GetByID(ctx context.Context, id string) (*models.Theme, error) {
	query := `
		SELECT id, name, slug, keywords, tone, target_audience, settings, created_by, created_at
		FROM themes WHERE id = ?
	`
	var theme models.Theme
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&theme.ID, &theme.Name, &theme.Slug, &theme.Keywords, &theme.Tone,
		&theme.TargetAudience, &theme.Settings, &theme.CreatedBy, &theme.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

// List returns all themes
func (r *themeRepo) List(ctx context.Context) ([]*models.Theme, error) {
	query := `
		SELECT id, name, slug, keywords, tone, target_audience, settings, created_by, created_at
		FROM themes ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var themes []*models.Theme
	for rows.Next() {
		var theme models.Theme
		err := rows.Scan(
			&theme.ID, &theme.Name, &theme.Slug, &theme.Keywords, &theme.Tone,
			&theme.TargetAudience, &theme.Settings, &theme.CreatedBy, &theme.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		themes = append(themes, &theme)
	}

	return themes, rows.Err()
}

// Count returns the number of themes
func (r *themeRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM themes`).Scan(&count)
	return count, err
}
