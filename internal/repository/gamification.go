// internal/repository/gamification.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"gorm.io/gorm"
)

// LeaderboardEntry is a points row joined with the employee and department names.
type LeaderboardEntry struct {
	EmployeeID     int64
	DisplayName    string
	Role           model.Role
	DepartmentName *string
	TotalPoints    int
	MonthPoints    int
}

type GamificationRepositoryIface interface {
	FindBadges(ctx context.Context) ([]*model.Badge, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	FindPoints(ctx context.Context, employeeID int64) (*model.UserPoints, error)
	CountAhead(ctx context.Context, totalPoints int) (int64, error)
	ActiveChallenges(ctx context.Context, period domain.Period) ([]*model.MonthlyChallenge, error)
	ChallengeProgress(ctx context.Context, employeeID int64, challengeIDs []int64) ([]*model.UserChallengeProgress, error)
}

type GamificationRepository struct {
	db *gorm.DB
}

func NewGamificationRepository(db *gorm.DB) *GamificationRepository {
	return &GamificationRepository{db: db}
}

func (r *GamificationRepository) FindBadges(ctx context.Context) ([]*model.Badge, error) {
	var badges []*model.Badge
	result := dbFrom(ctx, r.db).Order("level, badge_id").Find(&badges)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find badges: %w", result.Error)
	}
	return badges, nil
}

// Leaderboard returns the top point holders in descending total order.
// Points rows without an employee are skipped by the join.
func (r *GamificationRepository) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	result := dbFrom(ctx, r.db).
		Table("user_points").
		Select(`user_points.employee_id,
			employees.display_name,
			employees.role,
			departments.name AS department_name,
			user_points.total_points,
			user_points.month_points`).
		Joins("JOIN employees ON employees.employee_id = user_points.employee_id").
		Joins("LEFT JOIN departments ON departments.department_id = employees.department_id").
		Order("user_points.total_points DESC, user_points.employee_id ASC").
		Limit(limit).
		Scan(&entries)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", result.Error)
	}
	return entries, nil
}

// FindPoints returns domain.ErrNotFound when the employee has never earned points.
func (r *GamificationRepository) FindPoints(ctx context.Context, employeeID int64) (*model.UserPoints, error) {
	var points model.UserPoints
	result := dbFrom(ctx, r.db).Where("employee_id = ?", employeeID).First(&points)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find points: %w", result.Error)
	}
	return &points, nil
}

// CountAhead counts employees holding strictly more total points.
func (r *GamificationRepository) CountAhead(ctx context.Context, totalPoints int) (int64, error) {
	var count int64
	result := dbFrom(ctx, r.db).
		Model(&model.UserPoints{}).
		Where("total_points > ?", totalPoints).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to rank points: %w", result.Error)
	}
	return count, nil
}

func (r *GamificationRepository) ActiveChallenges(ctx context.Context, period domain.Period) ([]*model.MonthlyChallenge, error) {
	var challenges []*model.MonthlyChallenge
	result := dbFrom(ctx, r.db).
		Where("month = ? AND year = ? AND status = ?", period.Month, period.Year, model.StatusActive).
		Order("challenge_id").
		Find(&challenges)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find challenges: %w", result.Error)
	}
	return challenges, nil
}

func (r *GamificationRepository) ChallengeProgress(ctx context.Context, employeeID int64, challengeIDs []int64) ([]*model.UserChallengeProgress, error) {
	var progress []*model.UserChallengeProgress
	if len(challengeIDs) == 0 {
		return progress, nil
	}
	result := dbFrom(ctx, r.db).
		Where("employee_id = ? AND challenge_id IN ?", employeeID, challengeIDs).
		Find(&progress)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find challenge progress: %w", result.Error)
	}
	return progress, nil
}
