// internal/service/learning.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"github.com/dangerclosesec/adoptionhub/internal/repository"
	"github.com/go-playground/validator/v10"
)

type LearningService struct {
	repo     repository.LearningRepositoryIface
	validate *validator.Validate
}

func NewLearningService(repo repository.LearningRepositoryIface) *LearningService {
	return &LearningService{repo: repo, validate: newValidator()}
}

func (s *LearningService) Resources(ctx context.Context) ([]*model.LearningResource, error) {
	return s.repo.FindActiveResources(ctx)
}

func (s *LearningService) Progress(ctx context.Context, employeeID int64) ([]*model.UserLearningProgress, error) {
	return s.repo.ListProgress(ctx, employeeID)
}

// ProgressInput updates a progress row. Absent fields keep their value.
type ProgressInput struct {
	ProgressPercent *int    `json:"progress_percent" validate:"omitempty,min=0,max=100"`
	Status          *string `json:"status" validate:"omitempty,oneof=not_started in_progress completed"`
}

// UpdateProgress upserts the employee's progress on resourceID. A new row
// starts in_progress at 0%. completed_at is stamped when the status becomes
// completed and cleared when it leaves completed.
func (s *LearningService) UpdateProgress(ctx context.Context, employeeID, resourceID int64, now time.Time, input ProgressInput) (*model.UserLearningProgress, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	if _, err := s.repo.FindResource(ctx, resourceID); err != nil {
		return nil, err
	}

	progress, err := s.repo.FindProgress(ctx, employeeID, resourceID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		progress = &model.UserLearningProgress{
			EmployeeID: employeeID,
			ResourceID: resourceID,
			Status:     model.LearningInProgress,
		}
	case err != nil:
		return nil, err
	}

	if input.ProgressPercent != nil {
		progress.ProgressPercent = *input.ProgressPercent
	}
	if input.Status != nil {
		progress.Status = model.LearningStatus(*input.Status)
	}

	at := now.UTC()
	if progress.Status != model.LearningNotStarted && progress.StartedAt == nil {
		progress.StartedAt = &at
	}
	switch {
	case progress.Status == model.LearningCompleted && progress.CompletedAt == nil:
		progress.CompletedAt = &at
	case progress.Status != model.LearningCompleted:
		progress.CompletedAt = nil
	}

	if err := s.repo.SaveProgress(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}
