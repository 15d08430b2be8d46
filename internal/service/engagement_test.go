package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/mocks"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"github.com/dangerclosesec/adoptionhub/internal/repository"
	"github.com/dangerclosesec/adoptionhub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestUpdateProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("first update starts the resource", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockLearningRepositoryIface(ctrl)
		svc := service.NewLearningService(repo)

		repo.EXPECT().FindResource(gomock.Any(), int64(5)).Return(&model.LearningResource{ID: 5}, nil)
		repo.EXPECT().FindProgress(gomock.Any(), int64(42), int64(5)).Return(nil, domain.ErrNotFound)
		repo.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.UpdateProgress(ctx, 42, 5, jan2026, service.ProgressInput{ProgressPercent: intPtr(30)})
		require.NoError(t, err)
		assert.Equal(t, model.LearningInProgress, got.Status)
		assert.Equal(t, 30, got.ProgressPercent)
		require.NotNil(t, got.StartedAt)
		assert.Nil(t, got.CompletedAt)
	})

	t.Run("completion is stamped once and cleared on reopen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockLearningRepositoryIface(ctrl)
		svc := service.NewLearningService(repo)

		started := jan2026.Add(-72 * time.Hour)
		row := &model.UserLearningProgress{EmployeeID: 42, ResourceID: 5, Status: model.LearningInProgress, StartedAt: &started}

		repo.EXPECT().FindResource(gomock.Any(), int64(5)).Return(&model.LearningResource{ID: 5}, nil).Times(2)
		repo.EXPECT().FindProgress(gomock.Any(), int64(42), int64(5)).Return(row, nil).Times(2)
		repo.EXPECT().SaveProgress(gomock.Any(), row).Return(nil).Times(2)

		got, err := svc.UpdateProgress(ctx, 42, 5, jan2026, service.ProgressInput{Status: strPtr("completed"), ProgressPercent: intPtr(100)})
		require.NoError(t, err)
		require.NotNil(t, got.CompletedAt)
		assert.True(t, got.CompletedAt.Equal(jan2026))
		assert.True(t, got.StartedAt.Equal(started))

		got, err = svc.UpdateProgress(ctx, 42, 5, jan2026, service.ProgressInput{Status: strPtr("in_progress")})
		require.NoError(t, err)
		assert.Nil(t, got.CompletedAt)
	})

	t.Run("unknown resource", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockLearningRepositoryIface(ctrl)
		svc := service.NewLearningService(repo)

		repo.EXPECT().FindResource(gomock.Any(), int64(9)).Return(nil, domain.ErrResourceNotFound)

		_, err := svc.UpdateProgress(ctx, 42, 9, jan2026, service.ProgressInput{})
		assert.ErrorIs(t, err, domain.ErrResourceNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := service.NewLearningService(mocks.NewMockLearningRepositoryIface(ctrl))

		_, err := svc.UpdateProgress(ctx, 42, 5, jan2026, service.ProgressInput{ProgressPercent: intPtr(120)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = svc.UpdateProgress(ctx, 42, 5, jan2026, service.ProgressInput{Status: strPtr("abandoned")})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "status")
	})
}

func TestGamification(t *testing.T) {
	ctx := context.Background()

	t.Run("leaderboard ranks in order and clamps the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockGamificationRepositoryIface(ctrl)
		svc := service.NewGamificationService(repo)

		repo.EXPECT().Leaderboard(gomock.Any(), 100).Return([]repository.LeaderboardEntry{
			{EmployeeID: 9, TotalPoints: 900},
			{EmployeeID: 4, TotalPoints: 500},
		}, nil)

		rows, err := svc.Leaderboard(ctx, 5000)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 1, rows[0].Rank)
		assert.Equal(t, int64(9), rows[0].EmployeeID)
		assert.Equal(t, 2, rows[1].Rank)
	})

	t.Run("points rank counts employees strictly ahead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockGamificationRepositoryIface(ctrl)
		svc := service.NewGamificationService(repo)

		repo.EXPECT().FindPoints(gomock.Any(), int64(42)).Return(&model.UserPoints{EmployeeID: 42, TotalPoints: 300, MonthPoints: 40}, nil)
		repo.EXPECT().CountAhead(gomock.Any(), 300).Return(int64(2), nil)

		summary, err := svc.Points(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, 3, summary.Rank)
		assert.Equal(t, 300, summary.TotalPoints)
		assert.Equal(t, 40, summary.MonthPoints)
	})

	t.Run("no points row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockGamificationRepositoryIface(ctrl)
		svc := service.NewGamificationService(repo)

		repo.EXPECT().FindPoints(gomock.Any(), int64(42)).Return(nil, domain.ErrNotFound)

		summary, err := svc.Points(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, service.PointsSummary{EmployeeID: 42}, *summary)
	})

	t.Run("challenges merge employee progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockGamificationRepositoryIface(ctrl)
		svc := service.NewGamificationService(repo)

		challenges := []*model.MonthlyChallenge{{ID: 1, Title: "Automate a report"}, {ID: 2, Title: "Try three tools"}}
		repo.EXPECT().ActiveChallenges(gomock.Any(), p202601).Return(challenges, nil)
		repo.EXPECT().ChallengeProgress(gomock.Any(), int64(42), []int64{1, 2}).Return([]*model.UserChallengeProgress{
			{ChallengeID: 2, ProgressPercent: 100, Completed: true},
		}, nil)

		got, err := svc.Challenges(ctx, 42, p202601)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Zero(t, got[0].ProgressPercent)
		assert.False(t, got[0].Completed)
		assert.True(t, got[1].Completed)
	})
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNotificationRepositoryIface(ctrl)
	svc := service.NewNotificationService(repo)

	repo.EXPECT().ListByEmployee(gomock.Any(), int64(42), 50).Return([]*model.Notification{{ID: 1}}, nil)
	repo.EXPECT().CountByEmployee(gomock.Any(), int64(42)).Return(int64(12), int64(3), nil)

	list, err := svc.List(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
	assert.Equal(t, int64(12), list.Total)
	assert.Equal(t, int64(3), list.Unread)

	repo.EXPECT().MarkRead(gomock.Any(), int64(42), int64(77), jan2026).Return(domain.ErrNotificationNotFound)
	assert.ErrorIs(t, svc.MarkRead(ctx, 42, 77, jan2026), domain.ErrNotificationNotFound)
}

func TestCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("categories are never nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tools := mocks.NewMockToolRepositoryIface(ctrl)
		svc := service.NewCatalogService(tools)

		tools.EXPECT().Categories(gomock.Any()).Return(nil, nil)

		got, err := svc.Categories(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("access is logged for known tools", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tools := mocks.NewMockToolRepositoryIface(ctrl)
		svc := service.NewCatalogService(tools)

		tools.EXPECT().FindByID(gomock.Any(), int64(3)).Return(&model.AITool{ID: 3}, nil)
		tools.EXPECT().LogAccess(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry *model.ToolAccessLog) error {
			assert.Equal(t, int64(42), entry.EmployeeID)
			assert.Equal(t, int64(3), entry.ToolID)
			assert.Equal(t, model.ToolActionAccess, entry.Action)
			return nil
		})

		require.NoError(t, svc.LogAccess(ctx, 42, 3, jan2026))
	})

	t.Run("unknown tool", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tools := mocks.NewMockToolRepositoryIface(ctrl)
		svc := service.NewCatalogService(tools)

		tools.EXPECT().FindByID(gomock.Any(), int64(99)).Return(nil, domain.ErrToolNotFound)

		assert.ErrorIs(t, svc.LogAccess(ctx, 42, 99, jan2026), domain.ErrToolNotFound)
	})
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	employees := mocks.NewMockEmployeeRepositoryIface(ctrl)
	departments := mocks.NewMockDepartmentRepositoryIface(ctrl)
	svc := service.NewDirectoryService(employees, departments)

	employees.EXPECT().FindByID(gomock.Any(), int64(42)).Return(&model.Employee{ID: 42, DepartmentID: 3}, nil)
	departments.EXPECT().FindByID(gomock.Any(), int64(3)).Return(&model.Department{ID: 3, Name: "Operations"}, nil)

	profile, err := svc.Profile(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, profile.DepartmentName)
	assert.Equal(t, "Operations", *profile.DepartmentName)

	employees.EXPECT().FindByID(gomock.Any(), int64(43)).Return(&model.Employee{ID: 43, DepartmentID: 8}, nil)
	departments.EXPECT().FindByID(gomock.Any(), int64(8)).Return(nil, domain.ErrDepartmentNotFound)

	profile, err = svc.Profile(ctx, 43)
	require.NoError(t, err)
	assert.Nil(t, profile.DepartmentName)
}
