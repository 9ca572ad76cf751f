package extraction

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Job statuses.
const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusDone       = "DONE"
	StatusFailed     = "FAILED"
)

type Job struct {
	ID       int
	MenuID   string
	ImageURL string
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Enqueue(ctx context.Context, menuID, imageURL string) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO extraction_jobs (menu_id, image_url, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`, menuID, imageURL, StatusPending).Scan(&id)
	return id, err
}

// ClaimPending atomically claims the oldest pending job.
// Returns nil when no work is available (not an error).
func (r *Repository) ClaimPending(ctx context.Context) (*Job, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	job := &Job{}
	err = tx.QueryRow(ctx, `
		SELECT id, menu_id, image_url
		FROM extraction_jobs
		WHERE status = $1
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`, StatusPending).Scan(&job.ID, &job.MenuID, &job.ImageURL)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE extraction_jobs
		SET status = $1, updated_at = now()
		WHERE id = $2
	`, StatusProcessing, job.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return job, nil
}

func (r *Repository) MarkDone(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE extraction_jobs
		SET status = $1, error = NULL, updated_at = now()
		WHERE id = $2
	`, StatusDone, id)
	return err
}

func (r *Repository) MarkFailed(ctx context.Context, id int, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE extraction_jobs
		SET status = $1, error = $2, updated_at = now()
		WHERE id = $3
	`, StatusFailed, reason, id)
	return err
}

func (r *Repository) GetStatus(ctx context.Context, menuID string) (string, *string, error) {
	var status string
	var jobErr *string

	err := r.db.QueryRow(ctx, `
		SELECT status, error
		FROM extraction_jobs
		WHERE menu_id = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`, menuID).Scan(&status, &jobErr)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, errors.New("no extraction job for this menu")
		}
		return "", nil, err
	}
	return status, jobErr, nil
}
