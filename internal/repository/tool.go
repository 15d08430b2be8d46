// internal/repository/tool.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"gorm.io/gorm"
)

type ToolRepositoryIface interface {
	FindActive(ctx context.Context) ([]*model.AITool, error)
	FindByID(ctx context.Context, id int64) (*model.AITool, error)
	Categories(ctx context.Context) ([]string, error)
	LogAccess(ctx context.Context, log *model.ToolAccessLog) error
}

type ToolRepository struct {
	db *gorm.DB
}

func NewToolRepository(db *gorm.DB) *ToolRepository {
	return &ToolRepository{db: db}
}

func (r *ToolRepository) FindActive(ctx context.Context) ([]*model.AITool, error) {
	var tools []*model.AITool
	result := dbFrom(ctx, r.db).Where("is_active = ?", true).Order("name").Find(&tools)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find tools: %w", result.Error)
	}
	return tools, nil
}

func (r *ToolRepository) FindByID(ctx context.Context, id int64) (*model.AITool, error) {
	var tool model.AITool
	result := dbFrom(ctx, r.db).First(&tool, "tool_id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrToolNotFound
		}
		return nil, fmt.Errorf("failed to find tool: %w", result.Error)
	}
	return &tool, nil
}

// Categories returns the distinct categories of active tools, sorted.
func (r *ToolRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	result := dbFrom(ctx, r.db).
		Model(&model.AITool{}).
		Where("is_active = ?", true).
		Distinct("category").
		Order("category").
		Pluck("category", &categories)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list tool categories: %w", result.Error)
	}
	return categories, nil
}

func (r *ToolRepository) LogAccess(ctx context.Context, log *model.ToolAccessLog) error {
	result := dbFrom(ctx, r.db).Create(log)
	if result.Error != nil {
		return fmt.Errorf("failed to log tool access: %w", result.Error)
	}
	return nil
}
