package postgres

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The unique (job_id, applicant_id) index
// is the authority on duplicates: a constraint violation here is translated
// to ErrDuplicateApplication, which also settles concurrent submissions.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, applicant_id, description, resume, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	err := r.db.QueryRow(ctx, query,
		app.JobID,
		app.ApplicantID,
		app.Description,
		app.Resume,
		app.Status,
		app.CreatedAt,
		app.UpdatedAt,
	).Scan(&app.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicateApplication
		}
		return err
	}
	return nil
}

// GetByJobID retrieves all applications for a job with applicant identity
// and job title joined in.
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_id, a.description, a.resume, a.status, a.created_at, a.updated_at,
			u.name  as applicant_name,
			u.email as applicant_email,
			j.title as job_title
		FROM applications a
		LEFT JOIN users u ON a.applicant_id = u.id
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.Description, &app.Resume, &app.Status,
			&app.CreatedAt, &app.UpdatedAt,
			&app.ApplicantName, &app.ApplicantEmail, &app.JobTitle,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// GetByApplicantID retrieves all applications for a user with job title and
// company joined in.
func (r *applicationRepo) GetByApplicantID(ctx context.Context, applicantID string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_id, a.description, a.resume, a.status, a.created_at, a.updated_at,
			j.title   as job_title,
			j.company as job_company
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.Description, &app.Resume, &app.Status,
			&app.CreatedAt, &app.UpdatedAt,
			&app.JobTitle, &app.JobCompany,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// UpdateStatus overwrites the status of an application and sets updated_at
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1
	          RETURNING id, job_id, applicant_id, description, resume, status, created_at, updated_at`
	var app domain.Application
	err := r.db.QueryRow(ctx, query, id, status, time.Now()).Scan(
		&app.ID, &app.JobID, &app.ApplicantID, &app.Description, &app.Resume, &app.Status,
		&app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}
