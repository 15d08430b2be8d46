package serializer_test

import (
	"encoding/json"
	"testing"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"github.com/dangerclosesec/adoptionhub/internal/serializer"
	"github.com/dangerclosesec/adoptionhub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func encode(t *testing.T, v any) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

var period = domain.Period{Month: 1, Year: 2026}

func TestScorecardWithoutMetrics(t *testing.T) {
	got := encode(t, serializer.NewScorecard(&service.Scorecard{EmployeeID: 42, DisplayName: "A", Period: period}))

	assert.Equal(t, 0.0, got["current_score"], "missing entity defaults to zero")
	assert.NotContains(t, got, "previous_score")
	assert.NotContains(t, got, "month_change")
	assert.NotContains(t, got, "compared_to_department")
	assert.Equal(t, []any{}, got["trends"])
	assert.Equal(t, 0.0, got["hours_saved"])
}

func TestScorecardNullScoreStaysNull(t *testing.T) {
	card := &service.Scorecard{
		EmployeeID: 42,
		Period:     period,
		Current:    &model.AdoptionMetric{Month: 1, Year: 2026, HoursSaved: 4.5, TasksAIAssisted: 3},
		Previous:   &model.AdoptionMetric{Month: 12, Year: 2025},
	}
	got := encode(t, serializer.NewScorecard(card))

	require.Contains(t, got, "current_score")
	assert.Nil(t, got["current_score"])
	assert.NotContains(t, got, "previous_score")
	assert.Equal(t, 4.5, got["hours_saved"])
	assert.Equal(t, 3.0, got["tasks_automated"])
}

func TestScorecardComparison(t *testing.T) {
	tests := []struct {
		cmp  service.DepartmentComparison
		want string
	}{
		{service.DepartmentComparison{Average: 70, Gap: 10, Position: service.PositionAbove}, "Above average by 10 points"},
		{service.DepartmentComparison{Average: 90, Gap: 5, Position: service.PositionBelow}, "Below average by 5 points"},
		{service.DepartmentComparison{Average: 80, Position: service.PositionAt}, "At department average"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			cmp := tt.cmp
			card := &service.Scorecard{
				Period:      period,
				Current:     &model.AdoptionMetric{AdoptionScore: intPtr(80)},
				Previous:    &model.AdoptionMetric{AdoptionScore: intPtr(70)},
				MonthChange: intPtr(10),
				Trends:      []service.TrendPoint{{Period: period, Score: 80}},
				Comparison:  &cmp,
			}
			out := serializer.NewScorecard(card)
			require.NotNil(t, out.ComparedToDepartment)
			assert.Equal(t, tt.want, *out.ComparedToDepartment)
			assert.Equal(t, 10, *out.MonthChange)
			assert.Equal(t, 70, *out.PreviousScore)
			assert.Equal(t, []serializer.TrendPoint{{Month: 1, Year: 2026, Score: 80}}, out.Trends)
		})
	}
}

func TestTrendsUseYearMonthKeys(t *testing.T) {
	out := serializer.NewTrends([]service.TrendPeriod{
		{Period: domain.Period{Month: 9, Year: 2025}, UsersActive: 3},
		{Period: domain.Period{Month: 10, Year: 2025}, UsersActive: 4},
	})
	require.Len(t, out, 2)
	assert.Equal(t, "2025-09", out[0].Month)
	assert.Equal(t, "2025-10", out[1].Month)
}

func TestHistoryIsNeverNull(t *testing.T) {
	got := encode(t, serializer.NewHistory(42, 12, nil))
	assert.Equal(t, []any{}, got["data"])
	assert.Equal(t, 12.0, got["months"])
}

func TestRollupCarriesDepartmentNames(t *testing.T) {
	got := encode(t, serializer.NewRollup(1, 2026, []*service.DepartmentOverview{
		{DepartmentID: 3, DepartmentName: "Operations", Period: period, AvgScore: 75, ParticipationRate: 60, ActiveUsers: 6, TotalEmployees: 10, Materialized: true},
	}))

	assert.Equal(t, 1.0, got["month"])
	departments, ok := got["departments"].([]any)
	require.True(t, ok)
	require.Len(t, departments, 1)

	d := departments[0].(map[string]any)
	assert.Equal(t, "Operations", d["department_name"])
	assert.Equal(t, 75.0, d["avg_score"])
	assert.Equal(t, 2026.0, d["year"])
}

func TestMetricKeepsNullScore(t *testing.T) {
	got := encode(t, serializer.NewMetric(&model.AdoptionMetric{ID: 1, EmployeeID: 42, Month: 1, Year: 2026}))
	require.Contains(t, got, "adoption_score")
	assert.Nil(t, got["adoption_score"])
	assert.NotContains(t, got, "notes")
}

func TestLeaderboard(t *testing.T) {
	dept := "Operations"
	rows := []service.LeaderboardRow{{Rank: 1}}
	rows[0].EmployeeID = 9
	rows[0].DisplayName = "Top"
	rows[0].Role = model.RoleManager
	rows[0].DepartmentName = &dept
	rows[0].TotalPoints = 900

	got := serializer.NewLeaderboard(rows)
	require.Len(t, got, 1)
	assert.Equal(t, serializer.LeaderboardEntry{
		Rank:        1,
		EmployeeID:  9,
		DisplayName: "Top",
		Role:        model.RoleManager,
		Department:  &dept,
		Points:      900,
	}, got[0])
}

func TestNotifications(t *testing.T) {
	got := encode(t, serializer.NewNotifications(&service.NotificationList{Total: 2, Unread: 1}))
	assert.Equal(t, []any{}, got["items"])
	assert.Equal(t, 2.0, got["total"])
	assert.Equal(t, 1.0, got["unread"])
}
