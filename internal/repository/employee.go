// internal/repository/employee.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"gorm.io/gorm"
)

type EmployeeRepositoryIface interface {
	FindByID(ctx context.Context, id int64) (*model.Employee, error)
	FindByEmail(ctx context.Context, email string) (*model.Employee, error)
	CountActiveByDepartment(ctx context.Context, departmentID int64) (int64, error)
}

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*model.Employee, error) {
	var employee model.Employee
	result := dbFrom(ctx, r.db).First(&employee, "employee_id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", result.Error)
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var employee model.Employee
	result := dbFrom(ctx, r.db).Where("LOWER(email) = LOWER(?)", email).First(&employee)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", result.Error)
	}
	return &employee, nil
}

// CountActiveByDepartment counts employees with status active in the department.
func (r *EmployeeRepository) CountActiveByDepartment(ctx context.Context, departmentID int64) (int64, error) {
	var count int64
	result := dbFrom(ctx, r.db).
		Model(&model.Employee{}).
		Where("department_id = ? AND status = ?", departmentID, model.StatusActive).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count employees: %w", result.Error)
	}
	return count, nil
}
