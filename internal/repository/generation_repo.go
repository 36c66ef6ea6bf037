package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/meagherphilip/blogsmith/internal/database"
	"github.com/meagherphilip/blogsmith/internal/models"
)

// generationRepo is the concrete implementation of GenerationRepository
type generationRepo struct {
	db *database.DB
}

// NewGenerationRepo creates a new generation repository
func NewGenerationRepo(db *database.DB) GenerationRepository {
	return &generationRepo{db: db}
}

// Create inserts a new generation job in pending state
func (r *generationRepo) Create(ctx context.Context, gen *models.Generation) error {
	query := `
		INSERT INTO generations (id, blog_id, theme_id, author_id, prompt, model, status,
			output, cost, error, keywords, tone, voice, target_length, include_images,
			research, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		gen.ID, gen.BlogID, gen.ThemeID, gen.AuthorID, gen.Prompt, gen.Model, gen.Status,
		gen.Output, gen.Cost, gen.Error, gen.Keywords, gen.Tone, gen.Voice,
		gen.TargetLength, gen.IncludeImages, gen.Research, gen.CreatedAt,
	)
	return err
}

const generationColumns = `id, blog_id, theme_id, author_id, prompt, model, status,
	output, cost, error, keywords, tone, voice, target_length, include_images,
	research, created_at, completed_at`

func scanGeneration(scan func(...interface{}) error) (*models.Generation, error) {
	var gen models.Generation
	var completedAt sql.NullTime
	err := scan(
		&gen.ID, &gen.BlogID, &gen.ThemeID, &gen.AuthorID, &gen.Prompt, &gen.Model,
		&gen.Status, &gen.Output, &gen.Cost, &gen.Error, &gen.Keywords, &gen.Tone,
		&gen.Voice, &gen.TargetLength, &gen.IncludeImages, &gen.Research,
		&gen.CreatedAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}
	if completedAt.Valid {
		gen.CompletedAt = &completedAt.Time
	}
	return &gen, nil
}

// GetByID retrieves a generation job by ID
func (r *generationRepo) GetByID(ctx context.Context, id string) (*models.Generation, error) {
	query := `SELECT ` + generationColumns + ` FROM generations WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	gen, err := scanGeneration(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return gen, nil
}

// GetPending retrieves all pending jobs oldest first
func (r *generationRepo) GetPending(ctx context.Context) ([]*models.Generation, error) {
	query := `SELECT ` + generationColumns + ` FROM generations
		WHERE status = 'pending' ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gens []*models.Generation
	for rows.Next() {
		gen, err := scanGeneration(rows.Scan)
		if err != nil {
			return nil, err
		}
		gens = append(gens, gen)
	}

	return gens, rows.Err()
}

// Claim atomically moves a pending job into its first working state.
// Returns false when another worker already took it.
func (r *generationRepo) Claim(ctx context.Context, id string, to models.GenerationStatus) (bool, error) {
	if !models.GenerationStatusPending.CanTransition(to) {
		return false, nil
	}
	return r.guardedUpdate(ctx,
		`UPDATE generations SET status = ? WHERE id = ? AND status = 'pending'`,
		to, id)
}

// Transition moves a job forward from one working state to the next. The
// update is guarded on the current status so a stale writer loses.
func (r *generationRepo) Transition(ctx context.Context, id string, from, to models.GenerationStatus) (bool, error) {
	if !from.CanTransition(to) {
		return false, nil
	}
	return r.guardedUpdate(ctx,
		`UPDATE generations SET status = ? WHERE id = ? AND status = ?`,
		to, id, from)
}

// SetBlogID links the job to the blog row it created
func (r *generationRepo) SetBlogID(ctx context.Context, id, blogID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE generations SET blog_id = ? WHERE id = ?`, blogID, id)
	return err
}

// Complete marks a writing job as completed, recording the output blog id,
// the cost estimate and the completion time
func (r *generationRepo) Complete(ctx context.Context, id, output string, cost float64) (bool, error) {
	return r.guardedUpdate(ctx,
		`UPDATE generations SET status = 'completed', output = ?, cost = ?, completed_at = ?
		 WHERE id = ? AND status = 'writing'`,
		output, cost, time.Now(), id)
}

// Fail marks a non-terminal job as failed with the error text
func (r *generationRepo) Fail(ctx context.Context, id, errMsg string) (bool, error) {
	return r.guardedUpdate(ctx,
		`UPDATE generations SET status = 'failed', error = ?, completed_at = ?
		 WHERE id = ? AND status NOT IN ('completed', 'failed')`,
		errMsg, time.Now(), id)
}

// CountByStatus returns how many jobs sit in each state
func (r *generationRepo) CountByStatus(ctx context.Context) (map[models.GenerationStatus]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM generations GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.GenerationStatus]int)
	for rows.Next() {
		var status models.GenerationStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

func (r *generationRepo) guardedUpdate(ctx context.Context, query string, args ...interface{}) (bool, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}
