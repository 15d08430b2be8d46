// internal/repository/learning.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LearningRepositoryIface interface {
	FindActiveResources(ctx context.Context) ([]*model.LearningResource, error)
	FindResource(ctx context.Context, id int64) (*model.LearningResource, error)
	ListProgress(ctx context.Context, employeeID int64) ([]*model.UserLearningProgress, error)
	FindProgress(ctx context.Context, employeeID, resourceID int64) (*model.UserLearningProgress, error)
	SaveProgress(ctx context.Context, progress *model.UserLearningProgress) error
}

type LearningRepository struct {
	db *gorm.DB
}

func NewLearningRepository(db *gorm.DB) *LearningRepository {
	return &LearningRepository{db: db}
}

func (r *LearningRepository) FindActiveResources(ctx context.Context) ([]*model.LearningResource, error) {
	var resources []*model.LearningResource
	result := dbFrom(ctx, r.db).Where("is_active = ?", true).Order("resource_id").Find(&resources)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find learning resources: %w", result.Error)
	}
	return resources, nil
}

func (r *LearningRepository) FindResource(ctx context.Context, id int64) (*model.LearningResource, error) {
	var resource model.LearningResource
	result := dbFrom(ctx, r.db).First(&resource, "resource_id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to find learning resource: %w", result.Error)
	}
	return &resource, nil
}

func (r *LearningRepository) ListProgress(ctx context.Context, employeeID int64) ([]*model.UserLearningProgress, error) {
	var progress []*model.UserLearningProgress
	result := dbFrom(ctx, r.db).Where("employee_id = ?", employeeID).Order("resource_id").Find(&progress)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list learning progress: %w", result.Error)
	}
	return progress, nil
}

// FindProgress returns domain.ErrNotFound when the employee has not started the resource.
func (r *LearningRepository) FindProgress(ctx context.Context, employeeID, resourceID int64) (*model.UserLearningProgress, error) {
	var progress model.UserLearningProgress
	result := dbFrom(ctx, r.db).
		Where("employee_id = ? AND resource_id = ?", employeeID, resourceID).
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find learning progress: %w", result.Error)
	}
	return &progress, nil
}

// SaveProgress upserts on (employee_id, resource_id).
func (r *LearningRepository) SaveProgress(ctx context.Context, progress *model.UserLearningProgress) error {
	result := dbFrom(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "resource_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status",
				"progress_percent",
				"started_at",
				"completed_at",
				"score",
				"updated_at",
			}),
		}).
		Create(progress)
	if err := translateError(result.Error, domain.ErrNotFound); err != nil {
		return fmt.Errorf("failed to save learning progress: %w", err)
	}
	return nil
}
