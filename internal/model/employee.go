// internal/model/employee.go
package model

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// Employee is a directory entry. It is never hard-deleted; Status flips to inactive.
type Employee struct {
	ID           int64      `gorm:"column:employee_id;primaryKey" json:"employee_id"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	DisplayName  string     `gorm:"type:varchar(255);not null" json:"display_name"`
	DepartmentID int64      `gorm:"not null;index" json:"department_id"`
	Role         Role       `gorm:"type:varchar(100);not null" json:"role"`
	Status       Status     `gorm:"type:varchar(50);not null;default:'active'" json:"status"`
	HireDate     *time.Time `json:"hire_date,omitempty"`
	AvatarURL    *string    `gorm:"type:varchar(500)" json:"avatar_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// IsActive reports whether the employee may use the platform.
func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}
