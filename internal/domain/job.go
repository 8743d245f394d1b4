package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job categories (closed enumeration)
var JobCategories = []string{"MERN", "MEAN", "PHP", "Frontend", "Backend", "Python", "Other"}

type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Experience  string    `json:"experience"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary"`
	IsActive    bool      `json:"is_active"`
	CreatedBy   string    `json:"created_by"` // immutable after creation
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined data for list responses
	CreatedByName *string `json:"created_by_name,omitempty"`
}

// JobFilter is the allow-listed set of listing filters. Arbitrary
// client-supplied fields are never forwarded to the store.
type JobFilter struct {
	Category string
}

// JobUpdate carries the mutable subset of a job; nil fields are left unchanged.
type JobUpdate struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Experience  *string `json:"experience"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	Salary      *string `json:"salary"`
	IsActive    *bool   `json:"is_active"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Fetch(ctx context.Context, filter JobFilter, limit, offset int) ([]Job, int64, error)
	// UpdateOwned and DeleteOwned filter on owner as well as id, so a
	// non-owner observes the same ErrNotFound as a missing job.
	UpdateOwned(ctx context.Context, id int64, ownerID string, upd *JobUpdate) (*Job, error)
	DeleteOwned(ctx context.Context, id int64, ownerID string) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	ListJobs(ctx context.Context, filter JobFilter, page, pageSize int) ([]Job, int64, error)
	UpdateJob(ctx context.Context, userID string, id int64, upd *JobUpdate) (*Job, error)
	DeleteJob(ctx context.Context, userID string, id int64) error
}
