// internal/service/gamification.go
package service

import (
	"context"
	"errors"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"github.com/dangerclosesec/adoptionhub/internal/repository"
)

const maxLeaderboardSize = 100

type GamificationService struct {
	repo repository.GamificationRepositoryIface
}

func NewGamificationService(repo repository.GamificationRepositoryIface) *GamificationService {
	return &GamificationService{repo: repo}
}

func (s *GamificationService) Badges(ctx context.Context) ([]*model.Badge, error) {
	return s.repo.FindBadges(ctx)
}

type LeaderboardRow struct {
	Rank int
	repository.LeaderboardEntry
}

// Leaderboard ranks the top limit point holders. limit outside 1..100 selects 100.
func (s *GamificationService) Leaderboard(ctx context.Context, limit int) ([]LeaderboardRow, error) {
	if limit < 1 || limit > maxLeaderboardSize {
		limit = maxLeaderboardSize
	}

	entries, err := s.repo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}

	rows := make([]LeaderboardRow, len(entries))
	for i, e := range entries {
		rows[i] = LeaderboardRow{Rank: i + 1, LeaderboardEntry: e}
	}
	return rows, nil
}

type PointsSummary struct {
	EmployeeID  int64
	TotalPoints int
	MonthPoints int
	Rank        int
}

// Points returns the employee's totals. Rank is one more than the number of
// employees with strictly more points, or 0 when the employee has none.
func (s *GamificationService) Points(ctx context.Context, employeeID int64) (*PointsSummary, error) {
	points, err := s.repo.FindPoints(ctx, employeeID)
	if errors.Is(err, domain.ErrNotFound) {
		return &PointsSummary{EmployeeID: employeeID}, nil
	}
	if err != nil {
		return nil, err
	}

	ahead, err := s.repo.CountAhead(ctx, points.TotalPoints)
	if err != nil {
		return nil, err
	}

	return &PointsSummary{
		EmployeeID:  employeeID,
		TotalPoints: points.TotalPoints,
		MonthPoints: points.MonthPoints,
		Rank:        int(ahead) + 1,
	}, nil
}

type ChallengeStatus struct {
	Challenge       *model.MonthlyChallenge
	ProgressPercent int
	Completed       bool
}

// Challenges lists the active challenges of period with the employee's progress.
func (s *GamificationService) Challenges(ctx context.Context, employeeID int64, period domain.Period) ([]ChallengeStatus, error) {
	challenges, err := s.repo.ActiveChallenges(ctx, period)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(challenges))
	for i, c := range challenges {
		ids[i] = c.ID
	}
	progress, err := s.repo.ChallengeProgress(ctx, employeeID, ids)
	if err != nil {
		return nil, err
	}

	byChallenge := make(map[int64]*model.UserChallengeProgress, len(progress))
	for _, p := range progress {
		byChallenge[p.ChallengeID] = p
	}

	out := make([]ChallengeStatus, len(challenges))
	for i, c := range challenges {
		out[i] = ChallengeStatus{Challenge: c}
		if p, ok := byChallenge[c.ID]; ok {
			out[i].ProgressPercent = p.ProgressPercent
			out[i].Completed = p.Completed
		}
	}
	return out, nil
}
