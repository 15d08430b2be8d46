// internal/model/learning.go
package model

import "time"

type LearningResource struct {
	ID              int64     `gorm:"column:resource_id;primaryKey" json:"resource_id"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	Description     *string   `gorm:"type:text" json:"description,omitempty"`
	Type            string    `gorm:"type:varchar(50);not null;index" json:"type"`
	Provider        string    `gorm:"type:varchar(100);not null;index" json:"provider"`
	ExternalID      *string   `gorm:"type:varchar(255)" json:"external_id,omitempty"`
	DifficultyLevel string    `gorm:"type:varchar(50);not null;default:'beginner'" json:"difficulty_level"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	URL             *string   `gorm:"type:varchar(500)" json:"url,omitempty"`
	Tags            *string   `gorm:"type:varchar(500)" json:"tags,omitempty"`
	IsMandatory     bool      `gorm:"not null;default:false" json:"is_mandatory"`
	IsActive        bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (LearningResource) TableName() string {
	return "learning_resources"
}

type LearningStatus string

const (
	LearningNotStarted LearningStatus = "not_started"
	LearningInProgress LearningStatus = "in_progress"
	LearningCompleted  LearningStatus = "completed"
)

// UserLearningProgress is unique per (employee_id, resource_id).
type UserLearningProgress struct {
	ID              int64          `gorm:"primaryKey" json:"id"`
	EmployeeID      int64          `gorm:"not null;uniqueIndex:uq_learning_progress,priority:1" json:"employee_id"`
	ResourceID      int64          `gorm:"not null;uniqueIndex:uq_learning_progress,priority:2" json:"resource_id"`
	Status          LearningStatus `gorm:"type:varchar(50);not null;default:'not_started'" json:"status"`
	StartedAt       *time.Time     `json:"started_at,omitempty"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
	ProgressPercent int            `gorm:"not null;default:0" json:"progress_percent"`
	Score           *int           `json:"score,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (UserLearningProgress) TableName() string {
	return "user_learning_progress"
}
