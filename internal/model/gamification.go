// internal/model/gamification.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// Badge is an achievement definition.
type Badge struct {
	ID          int64          `gorm:"column:badge_id;primaryKey" json:"badge_id"`
	Name        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	IconURL     *string        `gorm:"type:varchar(500)" json:"icon_url,omitempty"`
	Criteria    datatypes.JSON `gorm:"column:criteria_json;type:jsonb" json:"criteria,omitempty"`
	Level       int            `gorm:"not null;default:1" json:"level"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (Badge) TableName() string {
	return "gamification_badges"
}

type UserBadge struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	EmployeeID int64     `gorm:"not null;index" json:"employee_id"`
	BadgeID    int64     `gorm:"not null" json:"badge_id"`
	AwardedOn  time.Time `json:"awarded_on"`
	CreatedAt  time.Time `json:"created_at"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}

// UserPoints is unique per employee.
type UserPoints struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	EmployeeID  int64     `gorm:"not null;uniqueIndex" json:"employee_id"`
	TotalPoints int       `gorm:"not null;default:0" json:"total_points"`
	MonthPoints int       `gorm:"not null;default:0" json:"month_points"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

func (UserPoints) TableName() string {
	return "user_points"
}

type MonthlyChallenge struct {
	ID           int64          `gorm:"column:challenge_id;primaryKey" json:"challenge_id"`
	Month        int            `gorm:"not null" json:"month"`
	Year         int            `gorm:"not null" json:"year"`
	Title        string         `gorm:"type:varchar(255);not null" json:"title"`
	Description  *string        `gorm:"type:text" json:"description,omitempty"`
	Criteria     datatypes.JSON `gorm:"column:criteria_json;type:jsonb" json:"criteria,omitempty"`
	RewardPoints int            `gorm:"not null;default:500" json:"reward_points"`
	Status       Status         `gorm:"type:varchar(50);not null;default:'active'" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (MonthlyChallenge) TableName() string {
	return "monthly_challenges"
}

type UserChallengeProgress struct {
	ID              int64      `gorm:"primaryKey" json:"id"`
	EmployeeID      int64      `gorm:"not null" json:"employee_id"`
	ChallengeID     int64      `gorm:"not null" json:"challenge_id"`
	ProgressPercent int        `gorm:"not null;default:0" json:"progress_percent"`
	Completed       bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (UserChallengeProgress) TableName() string {
	return "user_challenge_progress"
}
