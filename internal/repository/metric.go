// internal/repository/metric.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MetricRepositoryIface is the Metric Store. It is the only writer of
// ai_adoption_metrics rows.
type MetricRepositoryIface interface {
	Find(ctx context.Context, employeeID int64, period domain.Period) (*model.AdoptionMetric, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*model.AdoptionMetric, error)
	ListByDepartmentPeriod(ctx context.Context, departmentID int64, period domain.Period) ([]*model.AdoptionMetric, error)
	ListByPeriod(ctx context.Context, period domain.Period) ([]*model.AdoptionMetric, error)
	Upsert(ctx context.Context, metric *model.AdoptionMetric) (*model.AdoptionMetric, error)
}

type MetricRepository struct {
	db *gorm.DB
}

func NewMetricRepository(db *gorm.DB) *MetricRepository {
	return &MetricRepository{db: db}
}

// Find returns domain.ErrNotFound when the employee has no row for the period.
func (r *MetricRepository) Find(ctx context.Context, employeeID int64, period domain.Period) (*model.AdoptionMetric, error) {
	var metric model.AdoptionMetric
	result := dbFrom(ctx, r.db).
		Where("employee_id = ? AND month = ? AND year = ?", employeeID, period.Month, period.Year).
		First(&metric)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find adoption metric: %w", result.Error)
	}
	return &metric, nil
}

// ListByEmployee returns the employee's rows in ascending (year, month) order.
func (r *MetricRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]*model.AdoptionMetric, error) {
	var metrics []*model.AdoptionMetric
	result := dbFrom(ctx, r.db).
		Where("employee_id = ?", employeeID).
		Order("year ASC, month ASC").
		Find(&metrics)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list adoption metrics: %w", result.Error)
	}
	return metrics, nil
}

// ListByDepartmentPeriod returns the period's rows of every employee in the
// department, whatever the employee's status.
func (r *MetricRepository) ListByDepartmentPeriod(ctx context.Context, departmentID int64, period domain.Period) ([]*model.AdoptionMetric, error) {
	var metrics []*model.AdoptionMetric
	result := dbFrom(ctx, r.db).
		Joins("JOIN employees ON employees.employee_id = ai_adoption_metrics.employee_id").
		Where("employees.department_id = ?", departmentID).
		Where("ai_adoption_metrics.month = ? AND ai_adoption_metrics.year = ?", period.Month, period.Year).
		Find(&metrics)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list department adoption metrics: %w", result.Error)
	}
	return metrics, nil
}

func (r *MetricRepository) ListByPeriod(ctx context.Context, period domain.Period) ([]*model.AdoptionMetric, error) {
	var metrics []*model.AdoptionMetric
	result := dbFrom(ctx, r.db).
		Where("month = ? AND year = ?", period.Month, period.Year).
		Find(&metrics)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list period adoption metrics: %w", result.Error)
	}
	return metrics, nil
}

// Upsert inserts or overwrites the (employee_id, month, year) row in one
// statement and returns the persisted row. Races surface as domain.ErrStorageConflict.
func (r *MetricRepository) Upsert(ctx context.Context, metric *model.AdoptionMetric) (*model.AdoptionMetric, error) {
	result := dbFrom(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "month"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"adoption_score",
				"tasks_ai_assisted",
				"hours_saved",
				"tools_explored",
				"learning_hours",
				"notes",
				"updated_at",
			}),
		}).
		Create(metric)
	if err := translateError(result.Error, domain.ErrNotFound); err != nil {
		return nil, fmt.Errorf("failed to upsert adoption metric: %w", err)
	}

	return r.Find(ctx, metric.EmployeeID, metric.Period())
}
