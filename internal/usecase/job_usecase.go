package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	// Business Validation
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}

	// Ownership is fixed at creation and never changes afterwards
	job.CreatedBy = userID

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter, page, pageSize int) ([]domain.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.Fetch(ctx, filter, pageSize, offset)
}

// UpdateJob mutates a posting on behalf of userID. A non-owner gets the same
// NotFound as a missing id; existence is never confirmed to non-owners.
func (u *jobUsecase) UpdateJob(ctx context.Context, userID string, id int64, upd *domain.JobUpdate) (*domain.Job, error) {
	job, err := u.jobRepo.UpdateOwned(ctx, id, userID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found or you are not authorized to update this job")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, userID string, id int64) error {
	if err := u.jobRepo.DeleteOwned(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found or you are not authorized to delete this job")
		}
		return apperror.Internal(err)
	}
	return nil
}
