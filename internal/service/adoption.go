// internal/service/adoption.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/audit"
	"github.com/dangerclosesec/adoptionhub/internal/auth"
	"github.com/dangerclosesec/adoptionhub/internal/config"
	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"github.com/dangerclosesec/adoptionhub/internal/repository"
	"github.com/go-playground/validator/v10"
)

const (
	maxHistoryMonths = 120
	maxTrendMonths   = 60
)

// AnalyticsConfig carries the constants the Aggregator needs.
type AnalyticsConfig struct {
	HourlyRate           float64
	TrendPoints          int
	HistoryDefaultMonths int
	TrendsDefaultMonths  int
}

func AnalyticsConfigFrom(cfg *config.Config) AnalyticsConfig {
	return AnalyticsConfig{
		HourlyRate:           cfg.Analytics.HourlyRate,
		TrendPoints:          cfg.Analytics.TrendPoints,
		HistoryDefaultMonths: cfg.Analytics.HistoryDefaultMonths,
		TrendsDefaultMonths:  cfg.Analytics.TrendsDefaultMonths,
	}
}

// AdoptionService is the Aggregator. It reads and folds metric rows and is
// the only caller of MetricRepositoryIface.Upsert.
type AdoptionService struct {
	metrics     repository.MetricRepositoryIface
	employees   repository.EmployeeRepositoryIface
	departments repository.DepartmentRepositoryIface
	aggregates  repository.DepartmentAggregateRepositoryIface
	population  repository.PopulationScannerIface
	learning    repository.LearningRepositoryIface
	audit       audit.Logger
	tx          repository.TransactionManagerIface
	config      AnalyticsConfig
	validate    *validator.Validate
}

// AdoptionOption configures optional AdoptionService collaborators.
type AdoptionOption func(*AdoptionService)

// WithTransactions runs each metric write together with the refresh of its
// department aggregate inside one transaction of tx.
func WithTransactions(tx repository.TransactionManagerIface) AdoptionOption {
	return func(s *AdoptionService) {
		s.tx = tx
	}
}

// inlineTransactions runs fn directly. Used when no transaction manager is set.
type inlineTransactions struct{}

func (inlineTransactions) Within(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func NewAdoptionService(
	metrics repository.MetricRepositoryIface,
	employees repository.EmployeeRepositoryIface,
	departments repository.DepartmentRepositoryIface,
	aggregates repository.DepartmentAggregateRepositoryIface,
	population repository.PopulationScannerIface,
	learning repository.LearningRepositoryIface,
	auditLogger audit.Logger,
	config AnalyticsConfig,
	opts ...AdoptionOption,
) *AdoptionService {
	if auditLogger == nil {
		auditLogger = &audit.NoOpLogger{}
	}
	s := &AdoptionService{
		metrics:     metrics,
		employees:   employees,
		departments: departments,
		aggregates:  aggregates,
		population:  population,
		learning:    learning,
		audit:       auditLogger,
		tx:          inlineTransactions{},
		config:      config,
		validate:    newValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type TrendPoint struct {
	Period domain.Period
	Score  int
}

type ComparisonPosition string

const (
	PositionAbove ComparisonPosition = "above"
	PositionBelow ComparisonPosition = "below"
	PositionAt    ComparisonPosition = "at"
)

type DepartmentComparison struct {
	Average  float64
	Gap      int
	Position ComparisonPosition
}

// Scorecard is the per-employee summary for one period. Current and
// Previous are nil when the employee has no row for that period.
type Scorecard struct {
	EmployeeID       int64
	DisplayName      string
	Period           domain.Period
	Current          *model.AdoptionMetric
	Previous         *model.AdoptionMetric
	MonthChange      *int
	LearningProgress int
	Trends           []TrendPoint
	Comparison       *DepartmentComparison
}

// Scorecard computes the scorecard of employeeID for the period containing now.
func (s *AdoptionService) Scorecard(ctx context.Context, employeeID int64, now time.Time) (*Scorecard, error) {
	employee, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	period := domain.PeriodOf(now)
	card := &Scorecard{
		EmployeeID:  employee.ID,
		DisplayName: employee.DisplayName,
		Period:      period,
	}

	if card.Current, err = s.findOptional(ctx, employee.ID, period); err != nil {
		return nil, err
	}
	if card.Previous, err = s.findOptional(ctx, employee.ID, period.Prev()); err != nil {
		return nil, err
	}

	if card.Current != nil && card.Previous != nil &&
		card.Current.AdoptionScore != nil && card.Previous.AdoptionScore != nil {
		change := *card.Current.AdoptionScore - *card.Previous.AdoptionScore
		card.MonthChange = &change
	}

	history, err := s.metrics.ListByEmployee(ctx, employee.ID)
	if err != nil {
		return nil, err
	}
	for _, m := range lastN(history, s.config.TrendPoints) {
		point := TrendPoint{Period: m.Period()}
		if m.AdoptionScore != nil {
			point.Score = *m.AdoptionScore
		}
		card.Trends = append(card.Trends, point)
	}

	if card.Current != nil && card.Current.AdoptionScore != nil {
		peers, err := s.metrics.ListByDepartmentPeriod(ctx, employee.DepartmentID, period)
		if err != nil {
			return nil, err
		}
		if avg, ok := averageScore(peers); ok {
			card.Comparison = compare(float64(*card.Current.AdoptionScore), avg)
		}
	}

	progress, err := s.learning.ListProgress(ctx, employee.ID)
	if err != nil {
		return nil, err
	}
	card.LearningProgress = completionPercent(progress)

	return card, nil
}

func (s *AdoptionService) findOptional(ctx context.Context, employeeID int64, period domain.Period) (*model.AdoptionMetric, error) {
	m, err := s.metrics.Find(ctx, employeeID, period)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return m, err
}

// compare rounds the gap to whole points first, so a gap that rounds to
// zero is reported as at average.
func compare(score, avg float64) *DepartmentComparison {
	gap := int(math.Round(score - avg))
	c := &DepartmentComparison{Average: round1(avg), Position: PositionAt}
	switch {
	case gap > 0:
		c.Position = PositionAbove
		c.Gap = gap
	case gap < 0:
		c.Position = PositionBelow
		c.Gap = -gap
	}
	return c
}

func completionPercent(progress []*model.UserLearningProgress) int {
	if len(progress) == 0 {
		return 0
	}
	completed := 0
	for _, p := range progress {
		if p.Status == model.LearningCompleted {
			completed++
		}
	}
	return completed * 100 / len(progress)
}

// DepartmentOverview is one department's figures for one period.
type DepartmentOverview struct {
	DepartmentID      int64
	DepartmentName    string
	Period            domain.Period
	AvgScore          float64
	ParticipationRate float64
	TotalHoursSaved   float64
	TotalEmployees    int
	ActiveUsers       int
	ScoredUsers       int
	Materialized      bool
}

// DepartmentOverview prefers the materialized aggregate for the period and
// folds the raw rows otherwise. Both paths yield the same figures.
func (s *AdoptionService) DepartmentOverview(ctx context.Context, departmentID int64, period domain.Period) (*DepartmentOverview, error) {
	department, err := s.departments.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	agg, err := s.aggregates.Find(ctx, departmentID, period)
	switch {
	case err == nil:
		return &DepartmentOverview{
			DepartmentID:      department.ID,
			DepartmentName:    department.Name,
			Period:            period,
			AvgScore:          agg.AvgScore,
			ParticipationRate: agg.ParticipationRate,
			TotalHoursSaved:   agg.TotalHoursSaved,
			TotalEmployees:    agg.TotalEmployees,
			ActiveUsers:       agg.ActiveUsers,
			ScoredUsers:       agg.ScoredUsers,
			Materialized:      true,
		}, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	figures, err := s.foldLive(ctx, departmentID, period)
	if err != nil {
		return nil, err
	}

	return &DepartmentOverview{
		DepartmentID:      department.ID,
		DepartmentName:    department.Name,
		Period:            period,
		AvgScore:          figures.AvgScore,
		ParticipationRate: figures.ParticipationRate,
		TotalHoursSaved:   figures.TotalHoursSaved,
		TotalEmployees:    figures.TotalEmployees,
		ActiveUsers:       figures.ActiveUsers,
		ScoredUsers:       figures.ScoredUsers,
	}, nil
}

func (s *AdoptionService) foldLive(ctx context.Context, departmentID int64, period domain.Period) (departmentFigures, error) {
	total, err := s.employees.CountActiveByDepartment(ctx, departmentID)
	if err != nil {
		return departmentFigures{}, err
	}
	metrics, err := s.metrics.ListByDepartmentPeriod(ctx, departmentID, period)
	if err != nil {
		return departmentFigures{}, err
	}
	return foldDepartment(metrics, total), nil
}

func (s *AdoptionService) saveAggregate(ctx context.Context, departmentID int64, period domain.Period) (*model.DepartmentAggregate, error) {
	figures, err := s.foldLive(ctx, departmentID, period)
	if err != nil {
		return nil, err
	}
	agg := &model.DepartmentAggregate{
		DepartmentID:      departmentID,
		Month:             period.Month,
		Year:              period.Year,
		AvgScore:          figures.AvgScore,
		ParticipationRate: figures.ParticipationRate,
		TotalHoursSaved:   figures.TotalHoursSaved,
		TotalEmployees:    figures.TotalEmployees,
		ActiveUsers:       figures.ActiveUsers,
		ScoredUsers:       figures.ScoredUsers,
	}
	if err := s.aggregates.Save(ctx, agg); err != nil {
		return nil, err
	}
	return agg, nil
}

// refreshAggregate folds and saves the department aggregate under the
// (department, period) lock. ctx must carry the caller's transaction for
// the lock to outlive the statement.
func (s *AdoptionService) refreshAggregate(ctx context.Context, departmentID int64, period domain.Period) (*model.DepartmentAggregate, error) {
	if err := s.aggregates.Lock(ctx, departmentID, period); err != nil {
		return nil, err
	}
	return s.saveAggregate(ctx, departmentID, period)
}

// Rollup materializes the aggregate of every department for period. Each
// department is folded and saved in its own transaction.
func (s *AdoptionService) Rollup(ctx context.Context, period domain.Period) ([]*DepartmentOverview, error) {
	if !period.Valid() {
		return nil, domain.ErrInvalidPeriod
	}

	departments, err := s.departments.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	overviews := make([]*DepartmentOverview, 0, len(departments))
	for _, d := range departments {
		var agg *model.DepartmentAggregate
		err := s.tx.Within(ctx, func(ctx context.Context) error {
			var err error
			agg, err = s.refreshAggregate(ctx, d.ID, period)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("rollup department %d: %w", d.ID, err)
		}
		overviews = append(overviews, &DepartmentOverview{
			DepartmentID:      d.ID,
			DepartmentName:    d.Name,
			Period:            period,
			AvgScore:          agg.AvgScore,
			ParticipationRate: agg.ParticipationRate,
			TotalHoursSaved:   agg.TotalHoursSaved,
			TotalEmployees:    agg.TotalEmployees,
			ActiveUsers:       agg.ActiveUsers,
			ScoredUsers:       agg.ScoredUsers,
			Materialized:      true,
		})
	}

	s.record(ctx, audit.Entry{
		Action:       model.ActionRollup,
		ResourceType: model.ResourceDepartment,
		ResourceID:   period.String(),
		Details: map[string]interface{}{
			"departments": len(overviews),
		},
	})

	slog.InfoContext(ctx, "Department rollup complete", "period", period.String(), "departments", len(overviews))
	return overviews, nil
}

// MetricInput is the caller-supplied payload for the current period.
type MetricInput struct {
	AdoptionScore   *int    `json:"adoption_score" validate:"omitempty,min=0,max=100"`
	TasksAIAssisted int     `json:"tasks_ai_assisted" validate:"min=0"`
	HoursSaved      float64 `json:"hours_saved" validate:"min=0"`
	ToolsExplored   int     `json:"tools_explored" validate:"min=0"`
	LearningHours   float64 `json:"learning_hours" validate:"min=0"`
	Notes           *string `json:"notes" validate:"omitempty,max=2000"`
}

// UpsertMetric writes the caller's row for the period containing now. Past
// periods are never targeted. When the caller's department has a
// materialized aggregate for the period it is refreshed in the same
// transaction, so a failed refresh also discards the write. A storage
// conflict retries the whole transaction once.
func (s *AdoptionService) UpsertMetric(ctx context.Context, identity auth.Identity, now time.Time, input MetricInput) (*model.AdoptionMetric, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	period := domain.PeriodOf(now)
	row := func() *model.AdoptionMetric {
		return &model.AdoptionMetric{
			EmployeeID:      identity.EmployeeID,
			Month:           period.Month,
			Year:            period.Year,
			AdoptionScore:   input.AdoptionScore,
			TasksAIAssisted: input.TasksAIAssisted,
			HoursSaved:      input.HoursSaved,
			ToolsExplored:   input.ToolsExplored,
			LearningHours:   input.LearningHours,
			Notes:           input.Notes,
		}
	}

	var saved *model.AdoptionMetric
	write := func(ctx context.Context) error {
		if err := s.aggregates.Lock(ctx, identity.DepartmentID, period); err != nil {
			return err
		}

		m, err := s.metrics.Upsert(ctx, row())
		if err != nil {
			return err
		}

		_, err = s.aggregates.Find(ctx, identity.DepartmentID, period)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// not materialized for this period
		case err != nil:
			return err
		default:
			if _, err := s.saveAggregate(ctx, identity.DepartmentID, period); err != nil {
				return fmt.Errorf("refresh department %d aggregate: %w", identity.DepartmentID, err)
			}
		}

		saved = m
		return nil
	}

	err := s.tx.Within(ctx, write)
	if errors.Is(err, domain.ErrStorageConflict) {
		slog.WarnContext(ctx, "Retrying adoption metric upsert", "employeeID", identity.EmployeeID, "period", period.String(), "error", err)
		err = s.tx.Within(ctx, write)
	}
	if err != nil {
		return nil, err
	}

	employeeID := identity.EmployeeID
	details := map[string]interface{}{
		"month": period.Month,
		"year":  period.Year,
	}
	if input.AdoptionScore != nil {
		details["adoption_score"] = *input.AdoptionScore
	}
	s.record(ctx, audit.Entry{
		EmployeeID:   &employeeID,
		Action:       model.ActionMetricUpsert,
		ResourceType: model.ResourceAdoptionMetric,
		ResourceID:   strconv.FormatInt(saved.ID, 10),
		Details:      details,
	})

	return saved, nil
}

// History returns at most months of the employee's rows, oldest first.
// months of zero selects the configured default.
func (s *AdoptionService) History(ctx context.Context, employeeID int64, months int) ([]*model.AdoptionMetric, error) {
	if months == 0 {
		months = s.config.HistoryDefaultMonths
	}
	if months < 1 || months > maxHistoryMonths {
		return nil, fmt.Errorf("%w: months must be between 1 and %d", domain.ErrInvalidInput, maxHistoryMonths)
	}

	metrics, err := s.metrics.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return lastN(metrics, months), nil
}

// TrendPeriod is one period of the population-wide trend series.
type TrendPeriod struct {
	Period            domain.Period
	AvgAdoptionScore  float64
	TotalHoursSaved   float64
	AvgTasksAutomated float64
	UsersActive       int
}

// Trends folds every metric row into per-period figures and returns the
// most recent months periods in ascending order. months of zero selects the
// configured default.
func (s *AdoptionService) Trends(ctx context.Context, months int) ([]TrendPeriod, error) {
	if months == 0 {
		months = s.config.TrendsDefaultMonths
	}
	if months < 1 || months > maxTrendMonths {
		return nil, fmt.Errorf("%w: months must be between 1 and %d", domain.ErrInvalidInput, maxTrendMonths)
	}

	fold := newTrendFold()
	if err := s.population.Scan(ctx, fold.add); err != nil {
		return nil, err
	}
	return fold.points(months), nil
}

type ROISummary struct {
	Period          domain.Period
	TotalHoursSaved float64
	HourlyRate      float64
	TotalROI        float64
	UsersImpacted   int
	ROIPerUser      float64
}

// ROI values the hours saved in period at the configured hourly rate.
func (s *AdoptionService) ROI(ctx context.Context, period domain.Period) (*ROISummary, error) {
	metrics, err := s.metrics.ListByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}

	var hours float64
	for _, m := range metrics {
		hours += m.HoursSaved
	}

	summary := &ROISummary{
		Period:          period,
		TotalHoursSaved: round2(hours),
		HourlyRate:      s.config.HourlyRate,
		TotalROI:        round2(hours * s.config.HourlyRate),
		UsersImpacted:   len(metrics),
	}
	if summary.UsersImpacted > 0 {
		summary.ROIPerUser = round2(summary.TotalROI / float64(summary.UsersImpacted))
	}
	return summary, nil
}

func (s *AdoptionService) record(ctx context.Context, entry audit.Entry) {
	if err := s.audit.Log(ctx, entry); err != nil {
		slog.WarnContext(ctx, "Writing audit log", "action", entry.Action, "error", err)
	}
}

// Config returns the analytics constants the service was built with.
func (s *AdoptionService) Config() AnalyticsConfig {
	return s.config
}
