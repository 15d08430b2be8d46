package service_test

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
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

var (
	jan2026 = time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)
	p202601 = domain.Period{Month: 1, Year: 2026}
	p202512 = domain.Period{Month: 12, Year: 2025}
)

func intPtr(v int) *int { return &v }

type recordingLogger struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (l *recordingLogger) Log(_ context.Context, entry audit.Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return nil
}

type adoptionMocks struct {
	metrics     *mocks.MockMetricRepositoryIface
	employees   *mocks.MockEmployeeRepositoryIface
	departments *mocks.MockDepartmentRepositoryIface
	aggregates  *mocks.MockDepartmentAggregateRepositoryIface
	population  *mocks.MockPopulationScannerIface
	learning    *mocks.MockLearningRepositoryIface
	audit       *recordingLogger
}

func newAdoptionService(t *testing.T, opts ...service.AdoptionOption) (*service.AdoptionService, adoptionMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := adoptionMocks{
		metrics:     mocks.NewMockMetricRepositoryIface(ctrl),
		employees:   mocks.NewMockEmployeeRepositoryIface(ctrl),
		departments: mocks.NewMockDepartmentRepositoryIface(ctrl),
		aggregates:  mocks.NewMockDepartmentAggregateRepositoryIface(ctrl),
		population:  mocks.NewMockPopulationScannerIface(ctrl),
		learning:    mocks.NewMockLearningRepositoryIface(ctrl),
		audit:       &recordingLogger{},
	}
	svc := service.NewAdoptionService(m.metrics, m.employees, m.departments, m.aggregates, m.population, m.learning, m.audit, service.AnalyticsConfig{
		HourlyRate:           75,
		TrendPoints:          6,
		HistoryDefaultMonths: 12,
		TrendsDefaultMonths:  6,
	}, opts...)
	return svc, m
}

func metricFor(employeeID int64, p domain.Period, score *int, hours float64) *model.AdoptionMetric {
	return &model.AdoptionMetric{
		EmployeeID:    employeeID,
		Month:         p.Month,
		Year:          p.Year,
		AdoptionScore: score,
		HoursSaved:    hours,
	}
}

// monthsBack builds n consecutive periods ending at end, oldest first.
func monthsBack(end domain.Period, n int) []domain.Period {
	out := make([]domain.Period, n)
	p := end
	for i := n - 1; i >= 0; i-- {
		out[i] = p
		p = p.Prev()
	}
	return out
}

func TestScorecard(t *testing.T) {
	e42 := &model.Employee{ID: 42, DisplayName: "Employee 42", DepartmentID: 3, Status: model.StatusActive}

	t.Run("month change from previous period", func(t *testing.T) {
		svc, m := newAdoptionService(t)

		current := metricFor(42, p202601, intPtr(80), 12)
		current.TasksAIAssisted = 9
		previous := metricFor(42, p202512, intPtr(70), 8)

		m.employees.EXPECT().FindByID(gomock.Any(), int64(42)).Return(e42, nil)
		m.metrics.EXPECT().Find(gomock.Any(), int64(42), p202601).Return(current, nil)
		m.metrics.EXPECT().Find(gomock.Any(), int64(42), p202512).Return(previous, nil)
		m.metrics.EXPECT().ListByEmployee(gomock.Any(), int64(42)).Return([]*model.AdoptionMetric{previous, current}, nil)
		m.metrics.EXPECT().ListByDepartmentPeriod(gomock.Any(), int64(3), p202601).Return([]*model.AdoptionMetric{
			current,
			metricFor(7, p202601, intPtr(60), 0),
			metricFor(8, p202601, nil, 0),
		}, nil)
		m.learning.EXPECT().ListProgress(gomock.Any(), int64(42)).Return([]*model.UserLearningProgress{
			{Status: model.LearningCompleted},
			{Status: model.LearningInProgress},
		}, nil)

		card, err := svc.Scorecard(context.Background(), 42, jan2026)
		require.NoError(t, err)

		require.NotNil(t, card.MonthChange)
		assert.Equal(t, 10, *card.MonthChange)
		assert.Equal(t, p202601, card.Period)
		assert.Equal(t, 50, card.LearningProgress)
		require.Len(t, card.Trends, 2)
		assert.Equal(t, p202512, card.Trends[0].Period)

		require.NotNil(t, card.Comparison)
		assert.Equal(t, 70.0, card.Comparison.Average, "null peer scores are ignored")
		assert.Equal(t, service.PositionAbove, card.Comparison.Position)
		assert.Equal(t, 10, card.Comparison.Gap)
	})

	t.Run("no metrics at all", func(t *testing.T) {
		svc, m := newAdoptionService(t)

		m.employees.EXPECT().FindByID(gomock.Any(), int64(42)).Return(e42, nil)
		m.metrics.EXPECT().Find(gomock.Any(), int64(42), p202601).Return(nil, domain.ErrNotFound)
		m.metrics.EXPECT().Find(gomock.Any(), int64(42), p202512).Return(nil, domain.ErrNotFound)
		m.metrics.EXPECT().ListByEmployee(gomock.Any(), int64(42)).Return(nil, nil)
		m.learning.EXPECT().ListProgress(gomock.Any(), int64(42)).Return(nil, nil)

		card, err := svc.Scorecard(context.Background(), 42, jan2026)
		require.NoError(t, err)

		assert.Nil(t, card.Current)
		assert.Nil(t, card.MonthChange)
		assert.Nil(t, card.Comparison)
		assert.Empty(t, card.Trends)
		assert.Zero(t, card.LearningProgress)
	})

	t.Run("null current score leaves month change absent", func(t *testing.T) {
		svc, m := newAdoptionService(t)

		m.employees.EXPECT().FindByID(gomock.Any(), int64(42)).Return(e42, nil)
		m.metrics.EXPECT().Find(gomock.Any(), int64(42), p202601).Return(metricFor(42, p202601, nil, 3), nil)
		m.metrics.EXPECT().Find(gomock.Any(), int64(42), p202512).Return(metricFor(42, p202512, intPtr(70), 0), nil)
		m.metrics.EXPECT().ListByEmployee(gomock.Any(), int64(42)).Return(nil, nil)
		m.learning.EXPECT().ListProgress(gomock.Any(), int64(42)).Return(nil, nil)

		card, err := svc.Scorecard(context.Background(), 42, jan2026)
		require.NoError(t, err)
		assert.NotNil(t, card.Current)
		assert.Nil(t, card.MonthChange)
		assert.Nil(t, card.Comparison)
	})

	t.Run("trends keep the last six records", func(t *testing.T) {
		svc, m := newAdoptionService(t)

		var history []*model.AdoptionMetric
		for i, p := range monthsBack(p202601, 9) {
			var score *int
			if i != 7 {
				score = intPtr(50 + i)
			}
			history = append(history, metricFor(42, p, score, 0))
		}

		m.employees.EXPECT().FindByID(gomock.Any(), int64(42)).Return(e42, nil)
		m.metrics.EXPECT().Find(gomock.Any(), int64(42), gomock.Any()).Return(nil, domain.ErrNotFound).Times(2)
		m.metrics.EXPECT().ListByEmployee(gomock.Any(), int64(42)).Return(history, nil)
		m.learning.EXPECT().ListProgress(gomock.Any(), int64(42)).Return(nil, nil)

		card, err := svc.Scorecard(context.Background(), 42, jan2026)
		require.NoError(t, err)
		require.Len(t, card.Trends, 6)
		assert.Equal(t, 53, card.Trends[0].Score)
		assert.Equal(t, 0, card.Trends[4].Score, "absent score is charted as zero")
		assert.Equal(t, p202601, card.Trends[5].Period)
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc, m := newAdoptionService(t)
		m.employees.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, domain.ErrEmployeeNotFound)

		_, err := svc.Scorecard(context.Background(), 404, jan2026)
		assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	})
}

func d3Metrics() []*model.AdoptionMetric {
	scores := []int{60, 70, 80, 90, 50, 100}
	out := make([]*model.AdoptionMetric, len(scores))
	for i, s := range scores {
		out[i] = metricFor(int64(100+i), p202601, intPtr(s), float64(i+1))
	}
	return out
}

func TestDepartmentOverview(t *testing.T) {
	d3 := &model.Department{ID: 3, Name: "Operations"}

	t.Run("computed from raw rows", func(t *testing.T) {
		svc, m := newAdoptionService(t)

		m.departments.EXPECT().FindByID(gomock.Any(), int64(3)).Return(d3, nil)
		m.aggregates.EXPECT().Find(gomock.Any(), int64(3), p202601).Return(nil, domain.ErrNotFound)
		m.employees.EXPECT().CountActiveByDepartment(gomock.Any(), int64(3)).Return(int64(10), nil)
		m.metrics.EXPECT().ListByDepartmentPeriod(gomock.Any(), int64(3), p202601).Return(d3Metrics(), nil)

		overview, err := svc.DepartmentOverview(context.Background(), 3, p202601)
		require.NoError(t, err)

		assert.Equal(t, "Operations", overview.DepartmentName)
		assert.Equal(t, 75.0, overview.AvgScore)
		assert.Equal(t, 60.0, overview.ParticipationRate)
		assert.Equal(t, 21.0, overview.TotalHoursSaved)
		assert.Equal(t, 10, overview.TotalEmployees)
		assert.Equal(t, 6, overview.ActiveUsers)
		assert.False(t, overview.Materialized)
	})

	t.Run("empty department", func(t *testing.T) {
		svc, m := newAdoptionService(t)

		m.departments.EXPECT().FindByID(gomock.Any(), int64(3)).Return(d3, nil)
		m.aggregates.EXPECT().Find(gomock.Any(), int64(3), p202601).Return(nil, domain.ErrNotFound)
		m.employees.EXPECT().CountActiveByDepartment(gomock.Any(), int64(3)).Return(int64(0), nil)
		m.metrics.EXPECT().ListByDepartmentPeriod(gomock.Any(), int64(3), p202601).Return(nil, nil)

		overview, err := svc.DepartmentOverview(context.Background(), 3, p202601)
		require.NoError(t, err)
		assert.Zero(t, overview.AvgScore)
		assert.Zero(t, overview.ParticipationRate)
	})

	t.Run("unknown department", func(t *testing.T) {
		svc, m := newAdoptionService(t)
		m.departments.EXPECT().FindByID(gomock.Any(), int64(9)).Return(nil, domain.ErrDepartmentNotFound)

		_, err := svc.DepartmentOverview(context.Background(), 9, p202601)
		assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
	})

	t.Run("materialized path equals the raw fold", func(t *testing.T) {
		svc, m := newAdoptionService(t)

		var saved *model.DepartmentAggregate
		m.departments.EXPECT().FindAll(gomock.Any()).Return([]*model.Department{d3}, nil)
		m.aggregates.EXPECT().Lock(gomock.Any(), int64(3), p202601).Return(nil)
		m.employees.EXPECT().CountActiveByDepartment(gomock.Any(), int64(3)).Return(int64(10), nil).Times(2)
		m.metrics.EXPECT().ListByDepartmentPeriod(gomock.Any(), int64(3), p202601).Return(d3Metrics(), nil).Times(2)
		m.aggregates.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, agg *model.DepartmentAggregate) error {
			saved = agg
			return nil
		})

		rolled, err := svc.Rollup(context.Background(), p202601)
		require.NoError(t, err)
		require.Len(t, rolled, 1)
		require.NotNil(t, saved)
		assert.Equal(t, "Operations", rolled[0].DepartmentName)

		m.departments.EXPECT().FindByID(gomock.Any(), int64(3)).Return(d3, nil).Times(2)
		gomock.InOrder(
			m.aggregates.EXPECT().Find(gomock.Any(), int64(3), p202601).Return(nil, domain.ErrNotFound),
			m.aggregates.EXPECT().Find(gomock.Any(), int64(3), p202601).Return(saved, nil),
		)

		live, err := svc.DepartmentOverview(context.Background(), 3, p202601)
		require.NoError(t, err)
		cached, err := svc.DepartmentOverview(context.Background(), 3, p202601)
		require.NoError(t, err)

		assert.True(t, cached.Materialized)
		assert.Equal(t, rolled[0], cached)
		cached.Materialized = false
		assert.Equal(t, live, cached)

		require.Len(t, m.audit.entries, 1)
		assert.Equal(t, model.ActionRollup, m.audit.entries[0].Action)
	})
}

func TestROI(t *testing.T) {
	svc, m := newAdoptionService(t)

	m.metrics.EXPECT().ListByPeriod(gomock.Any(), p202601).Return([]*model.AdoptionMetric{
		metricFor(1, p202601, nil, 8),
		metricFor(2, p202601, intPtr(40), 16),
		metricFor(3, p202601, intPtr(90), 24),
	}, nil)

	roi, err := svc.ROI(context.Background(), p202601)
	require.NoError(t, err)
	assert.Equal(t, 48.0, roi.TotalHoursSaved)
	assert.Equal(t, 75.0, roi.HourlyRate)
	assert.Equal(t, 3600.0, roi.TotalROI)
	assert.Equal(t, 3, roi.UsersImpacted)
	assert.Equal(t, 1200.0, roi.ROIPerUser)

	m.metrics.EXPECT().ListByPeriod(gomock.Any(), p202512).Return(nil, nil)
	empty, err := svc.ROI(context.Background(), p202512)
	require.NoError(t, err)
	assert.Zero(t, empty.ROIPerUser)
}

// memoryMetrics keeps rows keyed the way the database unique constraint does.
type memoryMetrics struct {
	repository.MetricRepositoryIface
	rows   map[string]*model.AdoptionMetric
	nextID int64
}

func (s *memoryMetrics) key(employeeID int64, p domain.Period) string {
	return fmt.Sprintf("%d/%s", employeeID, p)
}

func (s *memoryMetrics) Upsert(_ context.Context, metric *model.AdoptionMetric) (*model.AdoptionMetric, error) {
	k := s.key(metric.EmployeeID, metric.Period())
	if existing, ok := s.rows[k]; ok {
		metric.ID = existing.ID
	} else {
		s.nextID++
		metric.ID = s.nextID
	}
	copied := *metric
	s.rows[k] = &copied
	return &copied, nil
}

func TestUpsertMetric(t *testing.T) {
	identity := auth.Identity{EmployeeID: 42, DepartmentID: 3, Role: model.RoleEmployee}

	t.Run("twice in one period leaves one row with the latest values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		aggregates := mocks.NewMockDepartmentAggregateRepositoryIface(ctrl)
		aggregates.EXPECT().Lock(gomock.Any(), int64(3), p202601).Return(nil).Times(2)
		aggregates.EXPECT().Find(gomock.Any(), int64(3), p202601).Return(nil, domain.ErrNotFound).Times(2)

		store := &memoryMetrics{rows: map[string]*model.AdoptionMetric{}}
		logger := &recordingLogger{}
		svc := service.NewAdoptionService(store, nil, nil, aggregates, nil, nil, logger, service.AnalyticsConfig{HourlyRate: 75, TrendPoints: 6})

		first, err := svc.UpsertMetric(context.Background(), identity, jan2026, service.MetricInput{AdoptionScore: intPtr(60), HoursSaved: 4})
		require.NoError(t, err)
		second, err := svc.UpsertMetric(context.Background(), identity, jan2026.Add(24*time.Hour), service.MetricInput{AdoptionScore: intPtr(85), HoursSaved: 9, TasksAIAssisted: 3})
		require.NoError(t, err)

		assert.Len(t, store.rows, 1)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 85, *second.AdoptionScore)
		assert.Equal(t, 9.0, second.HoursSaved)
		assert.Equal(t, p202601, second.Period())
		assert.Len(t, logger.entries, 2)
		assert.Equal(t, model.ActionMetricUpsert, logger.entries[1].Action)
	})

	t.Run("retries the whole transaction once on storage conflict", func(t *testing.T) {
		tx := &countingTx{}
		svc, m := newAdoptionService(t, service.WithTransactions(tx))

		persisted := metricFor(42, p202601, intPtr(70), 1)
		persisted.ID = 5
		m.aggregates.EXPECT().Lock(gomock.Any(), int64(3), p202601).Return(nil).Times(2)
		gomock.InOrder(
			m.metrics.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil, domain.ErrStorageConflict),
			m.metrics.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(persisted, nil),
		)
		m.aggregates.EXPECT().Find(gomock.Any(), int64(3), p202601).Return(nil, domain.ErrNotFound)

		saved, err := svc.UpsertMetric(context.Background(), identity, jan2026, service.MetricInput{AdoptionScore: intPtr(70), HoursSaved: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(5), saved.ID)
		assert.Equal(t, 2, tx.calls)
	})

	t.Run("gives up after the second conflict", func(t *testing.T) {
		svc, m := newAdoptionService(t)
		m.aggregates.EXPECT().Lock(gomock.Any(), int64(3), p202601).Return(nil).Times(2)
		m.metrics.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil, domain.ErrStorageConflict).Times(2)

		_, err := svc.UpsertMetric(context.Background(), identity, jan2026, service.MetricInput{})
		assert.ErrorIs(t, err, domain.ErrStorageConflict)
		assert.Empty(t, m.audit.entries)
	})

	t.Run("other failures are not retried", func(t *testing.T) {
		svc, m := newAdoptionService(t)
		m.aggregates.EXPECT().Lock(gomock.Any(), int64(3), p202601).Return(nil)
		m.metrics.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full")).Times(1)

		_, err := svc.UpsertMetric(context.Background(), identity, jan2026, service.MetricInput{})
		assert.Error(t, err)
	})

	t.Run("refreshes a materialized aggregate", func(t *testing.T) {
		svc, m := newAdoptionService(t)

		persisted := metricFor(42, p202601, intPtr(90), 2)
		gomock.InOrder(
			m.aggregates.EXPECT().Lock(gomock.Any(), int64(3), p202601).Return(nil),
			m.metrics.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(persisted, nil),
			m.aggregates.EXPECT().Find(gomock.Any(), int64(3), p202601).Return(&model.DepartmentAggregate{DepartmentID: 3}, nil),
			m.employees.EXPECT().CountActiveByDepartment(gomock.Any(), int64(3)).Return(int64(2), nil),
			m.metrics.EXPECT().ListByDepartmentPeriod(gomock.Any(), int64(3), p202601).Return([]*model.AdoptionMetric{persisted}, nil),
			m.aggregates.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, agg *model.DepartmentAggregate) error {
				assert.Equal(t, 90.0, agg.AvgScore)
				assert.Equal(t, 50.0, agg.ParticipationRate)
				return nil
			}),
		)

		_, err := svc.UpsertMetric(context.Background(), identity, jan2026, service.MetricInput{AdoptionScore: intPtr(90), HoursSaved: 2})
		require.NoError(t, err)
	})

	t.Run("aggregate lookup failure aborts the write", func(t *testing.T) {
		svc, m := newAdoptionService(t)
		m.aggregates.EXPECT().Lock(gomock.Any(), int64(3), p202601).Return(nil)
		m.metrics.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(metricFor(42, p202601, intPtr(90), 2), nil)
		m.aggregates.EXPECT().Find(gomock.Any(), int64(3), p202601).Return(nil, errors.New("connection reset"))

		_, err := svc.UpsertMetric(context.Background(), identity, jan2026, service.MetricInput{AdoptionScore: intPtr(90)})
		assert.Error(t, err)
		assert.Empty(t, m.audit.entries)
	})

	t.Run("validation", func(t *testing.T) {
		svc, _ := newAdoptionService(t)

		_, err := svc.UpsertMetric(context.Background(), identity, jan2026, service.MetricInput{AdoptionScore: intPtr(101)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.ErrorIs(t, err, domain.ErrInvalidScore)
		assert.Contains(t, err.Error(), "adoption_score")

		_, err = svc.UpsertMetric(context.Background(), identity, jan2026, service.MetricInput{HoursSaved: -1})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.NotErrorIs(t, err, domain.ErrInvalidScore)

		_, err = svc.UpsertMetric(context.Background(), identity, jan2026, service.MetricInput{TasksAIAssisted: -3})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestHistory(t *testing.T) {
	var rows []*model.AdoptionMetric
	for _, p := range monthsBack(p202601, 15) {
		rows = append(rows, metricFor(42, p, intPtr(60), 0))
	}

	tests := []struct {
		name   string
		months int
		stored []*model.AdoptionMetric
		want   int
	}{
		{"default is twelve", 0, rows, 12},
		{"explicit window", 3, rows, 3},
		{"never more than exist", 12, rows[:4], 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAdoptionService(t)
			m.metrics.EXPECT().ListByEmployee(gomock.Any(), int64(42)).Return(tt.stored, nil)

			got, err := svc.History(context.Background(), 42, tt.months)
			require.NoError(t, err)
			require.Len(t, got, tt.want)
			for i := 1; i < len(got); i++ {
				assert.True(t, got[i-1].Period().Before(got[i].Period()), "ascending order")
			}
			assert.Equal(t, tt.stored[len(tt.stored)-1], got[len(got)-1], "window ends at the latest record")
		})
	}

	t.Run("out of range", func(t *testing.T) {
		svc, _ := newAdoptionService(t)
		_, err := svc.History(context.Background(), 42, 121)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, err = svc.History(context.Background(), 42, -1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestTrends(t *testing.T) {
	svc, m := newAdoptionService(t)

	rows := []repository.PopulationRow{
		{Period: domain.Period{Month: 11, Year: 2025}, AdoptionScore: intPtr(40), HoursSaved: 2, TasksAIAssisted: 1},
		{Period: p202512, AdoptionScore: intPtr(70), HoursSaved: 10, TasksAIAssisted: 4},
		{Period: p202512, AdoptionScore: nil, HoursSaved: 0, TasksAIAssisted: 0},
		{Period: p202601, AdoptionScore: intPtr(80), HoursSaved: 3, TasksAIAssisted: 2},
		{Period: p202601, AdoptionScore: intPtr(91), HoursSaved: 4, TasksAIAssisted: 5},
	}
	m.population.EXPECT().Scan(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fn func(repository.PopulationRow) error) error {
		for _, r := range rows {
			if err := fn(r); err != nil {
				return err
			}
		}
		return nil
	})

	got, err := svc.Trends(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, p202512, got[0].Period)
	assert.Equal(t, 70.0, got[0].AvgAdoptionScore)
	assert.Equal(t, 20.0, got[0].TotalHoursSaved, "mean of non-zero hours times row count")
	assert.Equal(t, 4.0, got[0].AvgTasksAutomated)
	assert.Equal(t, 2, got[0].UsersActive)

	assert.Equal(t, p202601, got[1].Period)
	assert.Equal(t, 85.5, got[1].AvgAdoptionScore)
	assert.Equal(t, 7.0, got[1].TotalHoursSaved)
	assert.Equal(t, 3.5, got[1].AvgTasksAutomated)

	_, err = svc.Trends(context.Background(), 61)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// countingTx runs fn inline and counts transactions.
type countingTx struct {
	calls int
}

func (tx *countingTx) Within(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

// periodMetrics serves one department's rows from memory.
type periodMetrics struct {
	*memoryMetrics
}

func (s periodMetrics) ListByDepartmentPeriod(_ context.Context, _ int64, p domain.Period) ([]*model.AdoptionMetric, error) {
	var out []*model.AdoptionMetric
	for _, m := range s.rows {
		if m.Period() == p {
			out = append(out, m)
		}
	}
	return out, nil
}

type memoryAggregates struct {
	rows    map[string]*model.DepartmentAggregate
	saveErr error
	locks   int
}

func (s *memoryAggregates) key(departmentID int64, p domain.Period) string {
	return fmt.Sprintf("%d/%s", departmentID, p)
}

func (s *memoryAggregates) Find(_ context.Context, departmentID int64, p domain.Period) (*model.DepartmentAggregate, error) {
	agg, ok := s.rows[s.key(departmentID, p)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return agg, nil
}

func (s *memoryAggregates) Save(_ context.Context, agg *model.DepartmentAggregate) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	copied := *agg
	s.rows[s.key(agg.DepartmentID, domain.Period{Month: agg.Month, Year: agg.Year})] = &copied
	return nil
}

func (s *memoryAggregates) Lock(context.Context, int64, domain.Period) error {
	s.locks++
	return nil
}

// rollbackTx restores the in-memory stores when fn fails.
type rollbackTx struct {
	metrics    *memoryMetrics
	aggregates *memoryAggregates
}

func (tx *rollbackTx) Within(ctx context.Context, fn func(ctx context.Context) error) error {
	rows := maps.Clone(tx.metrics.rows)
	aggs := maps.Clone(tx.aggregates.rows)
	if err := fn(ctx); err != nil {
		tx.metrics.rows = rows
		tx.aggregates.rows = aggs
		return err
	}
	return nil
}

func TestMaterializedAggregateTracksWrites(t *testing.T) {
	d3 := &model.Department{ID: 3, Name: "Operations"}
	identity := auth.Identity{EmployeeID: 42, DepartmentID: 3, Role: model.RoleEmployee}

	ctrl := gomock.NewController(t)
	employees := mocks.NewMockEmployeeRepositoryIface(ctrl)
	departments := mocks.NewMockDepartmentRepositoryIface(ctrl)
	employees.EXPECT().CountActiveByDepartment(gomock.Any(), int64(3)).Return(int64(2), nil).AnyTimes()
	departments.EXPECT().FindAll(gomock.Any()).Return([]*model.Department{d3}, nil).AnyTimes()
	departments.EXPECT().FindByID(gomock.Any(), int64(3)).Return(d3, nil).AnyTimes()

	store := &memoryMetrics{rows: map[string]*model.AdoptionMetric{}}
	aggregates := &memoryAggregates{rows: map[string]*model.DepartmentAggregate{}}
	svc := service.NewAdoptionService(periodMetrics{store}, employees, departments, aggregates, nil, nil, &recordingLogger{},
		service.AnalyticsConfig{HourlyRate: 75, TrendPoints: 6},
		service.WithTransactions(&rollbackTx{metrics: store, aggregates: aggregates}))

	ctx := context.Background()
	_, err := store.Upsert(ctx, metricFor(7, p202601, intPtr(50), 1))
	require.NoError(t, err)
	_, err = svc.Rollup(ctx, p202601)
	require.NoError(t, err)

	aggregates.saveErr = errors.New("connection reset")
	_, err = svc.UpsertMetric(ctx, identity, jan2026, service.MetricInput{AdoptionScore: intPtr(90), HoursSaved: 2})
	require.Error(t, err)
	assert.Len(t, store.rows, 1, "the metric write is discarded with the failed refresh")

	overview, err := svc.DepartmentOverview(ctx, 3, p202601)
	require.NoError(t, err)
	assert.True(t, overview.Materialized)
	assert.Equal(t, 50.0, overview.AvgScore)
	assert.Equal(t, 1, overview.ActiveUsers)

	aggregates.saveErr = nil
	_, err = svc.UpsertMetric(ctx, identity, jan2026, service.MetricInput{AdoptionScore: intPtr(90), HoursSaved: 2})
	require.NoError(t, err)

	overview, err = svc.DepartmentOverview(ctx, 3, p202601)
	require.NoError(t, err)
	assert.True(t, overview.Materialized)
	assert.Equal(t, 70.0, overview.AvgScore)
	assert.Equal(t, 2, overview.ActiveUsers)
	assert.Equal(t, 100.0, overview.ParticipationRate)
	assert.Equal(t, 3, aggregates.locks, "rollup and both writes hold the department lock")
}
