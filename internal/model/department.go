// internal/model/department.go
package model

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Department is an organizational unit. Employees reference it by ID only.
type Department struct {
	ID          int64     `gorm:"column:department_id;primaryKey" json:"department_id"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	ManagerID   *int64    `gorm:"column:manager_id" json:"manager_id,omitempty"`
	Status      Status    `gorm:"type:varchar(50);not null;default:'active'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Department) TableName() string {
	return "departments"
}
