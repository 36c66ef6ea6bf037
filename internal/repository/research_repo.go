package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/meagherphilip/blogsmith/internal/database"
	"github.com/meagherphilip/blogsmith/internal/models"
)

// researchRepo is the concrete implementation of ResearchRepository
type researchRepo struct {
	db *database.DB
}

// NewResearchRepo creates a new research repository
func NewResearchRepo(db *database.DB) ResearchRepository {
	return &researchRepo{db: db}
}

// Create inserts collected research
func (r *researchRepo) Create(ctx context.Context, research *models.Research) error {
	query := `
		INSERT INTO research (id, query, topic, sources, key_stats, summary, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		research.ID, research.Query, research.Topic, research.Sources,
		research.KeyStats, research.Summary, research.CreatedAt, research.ExpiresAt,
	)
	return err
}

// GetByTopic returns the newest unexpired research for a topic. Expired
// rows stay in the table; they are only filtered here.
func (r *researchRepo) GetByTopic(ctx context.Context, topic string) (*models.Research, error) {
	query := `
		SELECT id, query, topic, sources, key_stats, summary, created_at, expires_at
		FROM research
		WHERE topic = ? AND expires_at > ?
		ORDER BY created_at DESC
		LIMIT 1
	`
	var research models.Research
	err := r.db.QueryRowContext(ctx, query, topic, time.Now()).Scan(
		&research.ID, &research.Query, &research.Topic, &research.Sources,
		&research.KeyStats, &research.Summary, &research.CreatedAt, &research.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &research, nil
}
