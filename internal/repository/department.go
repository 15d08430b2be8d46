// internal/repository/department.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"gorm.io/gorm"
)

type DepartmentRepositoryIface interface {
	FindByID(ctx context.Context, id int64) (*model.Department, error)
	FindAll(ctx context.Context) ([]*model.Department, error)
}

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id int64) (*model.Department, error) {
	var department model.Department
	result := dbFrom(ctx, r.db).First(&department, "department_id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to find department: %w", result.Error)
	}
	return &department, nil
}

// FindAll returns every department ordered by id.
func (r *DepartmentRepository) FindAll(ctx context.Context) ([]*model.Department, error) {
	var departments []*model.Department
	result := dbFrom(ctx, r.db).Order("department_id").Find(&departments)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find departments: %w", result.Error)
	}
	return departments, nil
}
