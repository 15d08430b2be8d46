// internal/model/notification.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	ID         int64             `gorm:"primaryKey" json:"id"`
	EmployeeID int64             `gorm:"not null;index" json:"employee_id"`
	Type       string            `gorm:"type:varchar(50);not null" json:"type"`
	Title      string            `gorm:"type:varchar(255);not null" json:"title"`
	Message    *string           `gorm:"type:text" json:"message,omitempty"`
	Data       datatypes.JSONMap `gorm:"column:data_json;type:jsonb" json:"data,omitempty"`
	IsRead     bool              `gorm:"not null;default:false" json:"is_read"`
	CreatedAt  time.Time         `json:"created_at"`
	ReadAt     *time.Time        `json:"read_at,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
