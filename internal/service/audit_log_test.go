package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/audit"
	"github.com/dangerclosesec/adoptionhub/internal/auth"
	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/mocks"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"github.com/dangerclosesec/adoptionhub/internal/repository"
	"github.com/dangerclosesec/adoptionhub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditLogService_Log(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditLogRepositoryIface(ctrl)
	svc := service.NewAuditLogService(repo)

	ctx := auth.WithIdentity(context.Background(), auth.Identity{EmployeeID: 42})
	ctx = audit.WithRequest(ctx, audit.Request{ClientIP: "10.0.0.8", UserAgent: "hub-test", RequestID: "req-1"})

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, log *model.AuditLog) error {
		require.NotNil(t, log.EmployeeID)
		assert.Equal(t, int64(42), *log.EmployeeID)
		assert.Equal(t, model.ActionToolAccess, log.Action)
		require.NotNil(t, log.ResourceID)
		assert.Equal(t, "3", *log.ResourceID)
		require.NotNil(t, log.IPAddress)
		assert.Equal(t, "10.0.0.8", *log.IPAddress)
		require.NotNil(t, log.RequestID)
		assert.Equal(t, "req-1", *log.RequestID)
		assert.Nil(t, log.Details)
		assert.False(t, log.Timestamp.IsZero())
		return nil
	})

	require.NoError(t, svc.Log(ctx, audit.Entry{
		Action:       model.ActionToolAccess,
		ResourceType: model.ResourceTool,
		ResourceID:   "3",
	}))
}

func TestAuditLogService_Query(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults and caps the page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAuditLogRepositoryIface(ctrl)
		svc := service.NewAuditLogService(repo)

		repo.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p repository.AuditQueryParams) ([]model.AuditLog, int64, error) {
			assert.Equal(t, repository.DefaultAuditLimit, p.Limit)
			return []model.AuditLog{{Action: model.ActionRollup}}, 1, nil
		})
		repo.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p repository.AuditQueryParams) ([]model.AuditLog, int64, error) {
			assert.Equal(t, 500, p.Limit)
			return nil, 0, nil
		})

		page, err := svc.Query(ctx, repository.AuditQueryParams{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
		assert.Equal(t, repository.DefaultAuditLimit, page.Limit)

		_, err = svc.Query(ctx, repository.AuditQueryParams{Limit: 10000})
		require.NoError(t, err)
	})

	t.Run("rejects bad windows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := service.NewAuditLogService(mocks.NewMockAuditLogRepositoryIface(ctrl))

		_, err := svc.Query(ctx, repository.AuditQueryParams{Offset: -1})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = svc.Query(ctx, repository.AuditQueryParams{StartTime: jan2026, EndTime: jan2026.Add(-time.Hour)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
