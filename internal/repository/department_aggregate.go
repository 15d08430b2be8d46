// internal/repository/department_aggregate.go
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

type DepartmentAggregateRepositoryIface interface {
	Find(ctx context.Context, departmentID int64, period domain.Period) (*model.DepartmentAggregate, error)
	Save(ctx context.Context, agg *model.DepartmentAggregate) error
	Lock(ctx context.Context, departmentID int64, period domain.Period) error
}

type DepartmentAggregateRepository struct {
	db *gorm.DB
}

func NewDepartmentAggregateRepository(db *gorm.DB) *DepartmentAggregateRepository {
	return &DepartmentAggregateRepository{db: db}
}

// Find returns domain.ErrNotFound when the period has not been rolled up.
func (r *DepartmentAggregateRepository) Find(ctx context.Context, departmentID int64, period domain.Period) (*model.DepartmentAggregate, error) {
	var agg model.DepartmentAggregate
	result := dbFrom(ctx, r.db).
		Where("department_id = ? AND month = ? AND year = ?", departmentID, period.Month, period.Year).
		First(&agg)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find department aggregate: %w", result.Error)
	}
	return &agg, nil
}

// Save replaces the aggregate for the (department_id, month, year) key.
func (r *DepartmentAggregateRepository) Save(ctx context.Context, agg *model.DepartmentAggregate) error {
	result := dbFrom(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "department_id"}, {Name: "month"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"avg_score",
				"participation_rate",
				"total_hours_saved",
				"total_employees",
				"active_users",
				"scored_users",
				"updated_at",
			}),
		}).
		Create(agg)
	if err := translateError(result.Error, domain.ErrNotFound); err != nil {
		return fmt.Errorf("failed to save department aggregate: %w", err)
	}
	return nil
}

// Lock takes a transaction-scoped advisory lock on the (department, period)
// key. Writers that fold and save the aggregate hold it, so a fold always
// sees every metric committed before the lock was granted. Outside a
// transaction the lock is released when the statement ends.
func (r *DepartmentAggregateRepository) Lock(ctx context.Context, departmentID int64, period domain.Period) error {
	result := dbFrom(ctx, r.db).
		Exec("SELECT pg_advisory_xact_lock(?, ?)", int32(departmentID), int32(period.Index()))
	if err := translateError(result.Error, domain.ErrNotFound); err != nil {
		return fmt.Errorf("failed to lock department aggregate: %w", err)
	}
	return nil
}
