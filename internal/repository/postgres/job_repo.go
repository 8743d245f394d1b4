package postgres

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (title, category, description, experience, company, location, salary, is_active, created_by, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	err := r.db.QueryRow(ctx, query,
		job.Title, job.Category, job.Description, job.Experience, job.Company, job.Location, job.Salary,
		job.IsActive, job.CreatedBy, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
	return err
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `
		SELECT j.id, j.title, j.category, j.description, j.experience, j.company, j.location, j.salary,
		       j.is_active, j.created_by, j.created_at, j.updated_at, u.name
		FROM jobs j
		LEFT JOIN users u ON j.created_by = u.id
		WHERE j.id = $1`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Category, &job.Description, &job.Experience, &job.Company,
		&job.Location, &job.Salary, &job.IsActive, &job.CreatedBy, &job.CreatedAt, &job.UpdatedAt,
		&job.CreatedByName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Fetch lists jobs newest first. The filter is an explicit allow-list;
// an unmatched category simply yields an empty page.
func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.Job, int64, error) {
	query := `
		SELECT j.id, j.title, j.category, j.description, j.experience, j.company, j.location, j.salary,
		       j.is_active, j.created_by, j.created_at, j.updated_at, u.name
		FROM jobs j
		LEFT JOIN users u ON j.created_by = u.id
		WHERE ($1 = '' OR j.category = $1)
		ORDER BY j.created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, filter.Category, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Category, &job.Description, &job.Experience, &job.Company,
			&job.Location, &job.Salary, &job.IsActive, &job.CreatedBy, &job.CreatedAt, &job.UpdatedAt,
			&job.CreatedByName,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM jobs WHERE ($1 = '' OR category = $1)`, filter.Category,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// UpdateOwned applies a partial update, but only when ownerID matches
// created_by. Zero matched rows deliberately reads as ErrNotFound so a
// non-owner learns nothing about the job's existence.
func (r *jobRepo) UpdateOwned(ctx context.Context, id int64, ownerID string, upd *domain.JobUpdate) (*domain.Job, error) {
	query := `UPDATE jobs SET
		title       = COALESCE($3, title),
		category    = COALESCE($4, category),
		description = COALESCE($5, description),
		experience  = COALESCE($6, experience),
		company     = COALESCE($7, company),
		location    = COALESCE($8, location),
		salary      = COALESCE($9, salary),
		is_active   = COALESCE($10, is_active),
		updated_at  = $11
	WHERE id = $1 AND created_by = $2
	RETURNING id, title, category, description, experience, company, location, salary, is_active, created_by, created_at, updated_at`

	var job domain.Job
	err := r.db.QueryRow(ctx, query,
		id, ownerID,
		upd.Title, upd.Category, upd.Description, upd.Experience, upd.Company, upd.Location, upd.Salary,
		upd.IsActive, time.Now(),
	).Scan(
		&job.ID, &job.Title, &job.Category, &job.Description, &job.Experience, &job.Company,
		&job.Location, &job.Salary, &job.IsActive, &job.CreatedBy, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) DeleteOwned(ctx context.Context, id int64, ownerID string) error {
	query := `DELETE FROM jobs WHERE id = $1 AND created_by = $2`
	result, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
