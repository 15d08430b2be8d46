// internal/service/notification.go
package service

import (
	"context"
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/model"
	"github.com/dangerclosesec/adoptionhub/internal/repository"
)

const notificationPageSize = 50

type NotificationService struct {
	repo repository.NotificationRepositoryIface
}

func NewNotificationService(repo repository.NotificationRepositoryIface) *NotificationService {
	return &NotificationService{repo: repo}
}

type NotificationList struct {
	Items  []*model.Notification
	Total  int64
	Unread int64
}

// List returns the employee's latest notifications and overall counts.
func (s *NotificationService) List(ctx context.Context, employeeID int64) (*NotificationList, error) {
	items, err := s.repo.ListByEmployee(ctx, employeeID, notificationPageSize)
	if err != nil {
		return nil, err
	}
	total, unread, err := s.repo.CountByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return &NotificationList{Items: items, Total: total, Unread: unread}, nil
}

// MarkRead returns domain.ErrNotificationNotFound for another employee's notification.
func (s *NotificationService) MarkRead(ctx context.Context, employeeID, id int64, now time.Time) error {
	return s.repo.MarkRead(ctx, employeeID, id, now.UTC())
}
