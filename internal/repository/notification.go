// internal/repository/notification.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"gorm.io/gorm"
)

type NotificationRepositoryIface interface {
	ListByEmployee(ctx context.Context, employeeID int64, limit int) ([]*model.Notification, error)
	CountByEmployee(ctx context.Context, employeeID int64) (total int64, unread int64, err error)
	MarkRead(ctx context.Context, employeeID, id int64, at time.Time) error
}

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// ListByEmployee returns the newest notifications first.
func (r *NotificationRepository) ListByEmployee(ctx context.Context, employeeID int64, limit int) ([]*model.Notification, error) {
	var notifications []*model.Notification
	result := dbFrom(ctx, r.db).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notifications)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", result.Error)
	}
	return notifications, nil
}

func (r *NotificationRepository) CountByEmployee(ctx context.Context, employeeID int64) (int64, int64, error) {
	var counts struct {
		Total  int64
		Unread int64
	}
	result := dbFrom(ctx, r.db).
		Model(&model.Notification{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE NOT is_read) AS unread").
		Where("employee_id = ?", employeeID).
		Scan(&counts)
	if result.Error != nil {
		return 0, 0, fmt.Errorf("failed to count notifications: %w", result.Error)
	}
	return counts.Total, counts.Unread, nil
}

// MarkRead flags the notification read. A notification owned by another
// employee is indistinguishable from a missing one. read_at keeps the first read time.
func (r *NotificationRepository) MarkRead(ctx context.Context, employeeID, id int64, at time.Time) error {
	result := dbFrom(ctx, r.db).
		Model(&model.Notification{}).
		Where("id = ? AND employee_id = ?", id, employeeID).
		Updates(map[string]any{
			"is_read": true,
			"read_at": gorm.Expr("COALESCE(read_at, ?)", at),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
