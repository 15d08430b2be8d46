// internal/repository/audit_log.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultAuditLimit = 100

// AuditQueryParams holds parameters for querying audit logs
type AuditQueryParams struct {
	EmployeeID   *int64
	Action       string
	ResourceType string
	StartTime    time.Time
	EndTime      time.Time
	Limit        int
	Offset       int
}

type AuditLogRepositoryIface interface {
	Create(ctx context.Context, log *model.AuditLog) error
	Query(ctx context.Context, params AuditQueryParams) ([]model.AuditLog, int64, error)
}

// AuditLogRepository handles database operations for audit logs
type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create inserts a new audit log entry
func (r *AuditLogRepository) Create(ctx context.Context, log *model.AuditLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}

	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}

	result := dbFrom(ctx, r.db).Create(log)
	if result.Error != nil {
		return fmt.Errorf("failed to create audit log: %w", result.Error)
	}

	return nil
}

// Query retrieves audit logs newest first along with the unpaginated total.
func (r *AuditLogRepository) Query(ctx context.Context, params AuditQueryParams) ([]model.AuditLog, int64, error) {
	var logs []model.AuditLog
	var count int64

	query := dbFrom(ctx, r.db).Model(&model.AuditLog{})

	if params.EmployeeID != nil {
		query = query.Where("employee_id = ?", *params.EmployeeID)
	}
	if params.Action != "" {
		query = query.Where("action = ?", params.Action)
	}
	if params.ResourceType != "" {
		query = query.Where("resource_type = ?", params.ResourceType)
	}
	if !params.StartTime.IsZero() {
		query = query.Where("timestamp >= ?", params.StartTime)
	}
	if !params.EndTime.IsZero() {
		query = query.Where("timestamp <= ?", params.EndTime)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultAuditLimit
	}
	query = query.Limit(limit)

	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	result := query.Order("timestamp DESC").Find(&logs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to query audit logs: %w", result.Error)
	}

	return logs, count, nil
}
