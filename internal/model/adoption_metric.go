// internal/model/adoption_metric.go
package model

import (
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
)

// AdoptionMetric holds one employee's figures for one month.
// (employee_id, month, year) is unique.
type AdoptionMetric struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	EmployeeID      int64     `gorm:"not null;uniqueIndex:uq_metric_period,priority:1" json:"employee_id"`
	Month           int       `gorm:"not null;uniqueIndex:uq_metric_period,priority:2" json:"month"`
	Year            int       `gorm:"not null;uniqueIndex:uq_metric_period,priority:3" json:"year"`
	AdoptionScore   *int      `json:"adoption_score"`
	TasksAIAssisted int       `gorm:"column:tasks_ai_assisted;not null;default:0" json:"tasks_ai_assisted"`
	HoursSaved      float64   `gorm:"type:decimal(10,2);not null;default:0" json:"hours_saved"`
	ToolsExplored   int       `gorm:"not null;default:0" json:"tools_explored"`
	LearningHours   float64   `gorm:"type:decimal(10,2);not null;default:0" json:"learning_hours"`
	Notes           *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (AdoptionMetric) TableName() string {
	return "ai_adoption_metrics"
}

// Period returns the reporting cycle the row belongs to.
func (m *AdoptionMetric) Period() domain.Period {
	return domain.Period{Month: m.Month, Year: m.Year}
}

// DepartmentAggregate is a materialized department rollup for one period.
// It must always equal the value folded from raw AdoptionMetric rows.
type DepartmentAggregate struct {
	ID                int64     `gorm:"primaryKey" json:"id"`
	DepartmentID      int64     `gorm:"not null;uniqueIndex:uq_dept_agg_period,priority:1" json:"department_id"`
	Month             int       `gorm:"not null;uniqueIndex:uq_dept_agg_period,priority:2" json:"month"`
	Year              int       `gorm:"not null;uniqueIndex:uq_dept_agg_period,priority:3" json:"year"`
	AvgScore          float64   `gorm:"type:decimal(5,2);not null;default:0" json:"avg_score"`
	ParticipationRate float64   `gorm:"type:decimal(5,2);not null;default:0" json:"participation_rate"`
	TotalHoursSaved   float64   `gorm:"type:decimal(12,2);not null;default:0" json:"total_hours_saved"`
	TotalEmployees    int       `gorm:"not null;default:0" json:"total_employees"`
	ActiveUsers       int       `gorm:"not null;default:0" json:"active_users"`
	ScoredUsers       int       `gorm:"not null;default:0" json:"scored_users"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (DepartmentAggregate) TableName() string {
	return "department_adoption_agg"
}
