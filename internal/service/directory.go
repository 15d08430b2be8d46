// internal/service/directory.go
package service

import (
	"context"
	"errors"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"github.com/dangerclosesec/adoptionhub/internal/repository"
)

type DirectoryService struct {
	employees   repository.EmployeeRepositoryIface
	departments repository.DepartmentRepositoryIface
}

func NewDirectoryService(employees repository.EmployeeRepositoryIface, departments repository.DepartmentRepositoryIface) *DirectoryService {
	return &DirectoryService{employees: employees, departments: departments}
}

// Profile is an employee with the name of their department.
type Profile struct {
	Employee       *model.Employee
	DepartmentName *string
}

// Profile loads the employee. A dangling department reference leaves the
// department name absent.
func (s *DirectoryService) Profile(ctx context.Context, employeeID int64) (*Profile, error) {
	employee, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	profile := &Profile{Employee: employee}
	department, err := s.departments.FindByID(ctx, employee.DepartmentID)
	switch {
	case err == nil:
		profile.DepartmentName = &department.Name
	case !errors.Is(err, domain.ErrDepartmentNotFound):
		return nil, err
	}
	return profile, nil
}
