package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
	}
}

// Submit records an application for jobID. The resume artifact must already
// be durably stored by the caller; only its reference is recorded here.
func (uc *applicationUsecase) Submit(ctx context.Context, applicantID string, jobID int64, description, resume string) (*domain.Application, error) {
	if resume == "" {
		return nil, apperror.BadRequest("Please upload your resume")
	}
	if description == "" {
		return nil, apperror.BadRequest("Please provide a brief description about yourself")
	}

	if _, err := uc.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	app := &domain.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Description: description,
		Resume:      resume,
		Status:      domain.ApplicationStatusPending,
	}

	// The store's unique index is what actually arbitrates duplicates, so two
	// concurrent submissions cannot both get through
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicateApplication) {
			return nil, apperror.BadRequest("You have already applied for this job")
		}
		return nil, apperror.Internal(err)
	}

	return app, nil
}

// ListMine returns the calling user's applications with job details joined
func (uc *applicationUsecase) ListMine(ctx context.Context, applicantID string) ([]domain.Application, error) {
	apps, err := uc.applicationRepo.GetByApplicantID(ctx, applicantID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// ListForJob returns all applications for a job with applicant identity joined
func (uc *applicationUsecase) ListForJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	apps, err := uc.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// SetStatus overwrites an application's status. Any status may move to any
// other; the only check is membership in the closed enumeration.
func (uc *applicationUsecase) SetStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	if !domain.ValidApplicationStatus(status) {
		return nil, apperror.BadRequest("Invalid status. Must be: pending, reviewed, accepted, or rejected")
	}

	app, err := uc.applicationRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}
