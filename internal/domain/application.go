package domain

import (
	"context"
	"errors"
	"time"
)

// Application status constants
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

var ErrDuplicateApplication = errors.New("application already exists for this job and applicant")

// ValidApplicationStatus reports whether s is inside the closed enumeration.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application represents a single applicant's submission against one job
type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	ApplicantID string    `json:"applicant_id"`
	Description string    `json:"description"`
	Resume      string    `json:"resume"` // stored artifact filename
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined data for list responses
	ApplicantName  *string `json:"applicant_name,omitempty"`
	ApplicantEmail *string `json:"applicant_email,omitempty"`
	JobTitle       *string `json:"job_title,omitempty"`
	JobCompany     *string `json:"job_company,omitempty"`
}

// ApplicationRepository defines data access methods for applications.
// Create must rely on the store's unique (job_id, applicant_id) index and
// surface constraint violations as ErrDuplicateApplication so concurrent
// submissions cannot both succeed.
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetByApplicantID(ctx context.Context, applicantID string) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Application, error)
}

// ApplicationUsecase defines business logic for applications
type ApplicationUsecase interface {
	// Applicant operations
	Submit(ctx context.Context, applicantID string, jobID int64, description, resume string) (*Application, error)
	ListMine(ctx context.Context, applicantID string) ([]Application, error)

	// Admin operations
	ListForJob(ctx context.Context, jobID int64) ([]Application, error)
	SetStatus(ctx context.Context, id int64, status string) (*Application, error)
}
