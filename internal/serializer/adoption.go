// internal/serializer/adoption.go
package serializer

import (
	"fmt"
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/model"
	"github.com/dangerclosesec/adoptionhub/internal/service"
)

// Scores are absent (omitted) when the component is missing from a present
// entity. Zero is only used for a missing entity, such as an employee who
// has not reported for the period yet.

type TrendPoint struct {
	Month int `json:"month"`
	Year  int `json:"year"`
	Score int `json:"score"`
}

type Scorecard struct {
	EmployeeID           int64        `json:"employee_id"`
	DisplayName          string       `json:"display_name"`
	Month                int          `json:"month"`
	Year                 int          `json:"year"`
	CurrentScore         *int         `json:"current_score"`
	PreviousScore        *int         `json:"previous_score,omitempty"`
	MonthChange          *int         `json:"month_change,omitempty"`
	TasksAutomated       int          `json:"tasks_automated"`
	HoursSaved           float64      `json:"hours_saved"`
	ToolsUsed            int          `json:"tools_used"`
	LearningProgress     int          `json:"learning_progress"`
	Trends               []TrendPoint `json:"trends"`
	ComparedToDepartment *string      `json:"compared_to_department,omitempty"`
	DepartmentAverage    *float64     `json:"department_average,omitempty"`
}

func NewScorecard(card *service.Scorecard) Scorecard {
	out := Scorecard{
		EmployeeID:       card.EmployeeID,
		DisplayName:      card.DisplayName,
		Month:            card.Period.Month,
		Year:             card.Period.Year,
		MonthChange:      card.MonthChange,
		LearningProgress: card.LearningProgress,
		Trends:           make([]TrendPoint, 0, len(card.Trends)),
	}

	if c := card.Current; c != nil {
		out.CurrentScore = c.AdoptionScore
		out.TasksAutomated = c.TasksAIAssisted
		out.HoursSaved = c.HoursSaved
		out.ToolsUsed = c.ToolsExplored
	} else {
		zero := 0
		out.CurrentScore = &zero
	}
	if card.Previous != nil {
		out.PreviousScore = card.Previous.AdoptionScore
	}

	for _, p := range card.Trends {
		out.Trends = append(out.Trends, TrendPoint{Month: p.Period.Month, Year: p.Period.Year, Score: p.Score})
	}

	if cmp := card.Comparison; cmp != nil {
		msg := comparisonMessage(cmp)
		avg := cmp.Average
		out.ComparedToDepartment = &msg
		out.DepartmentAverage = &avg
	}
	return out
}

func comparisonMessage(c *service.DepartmentComparison) string {
	switch c.Position {
	case service.PositionAbove:
		return fmt.Sprintf("Above average by %d points", c.Gap)
	case service.PositionBelow:
		return fmt.Sprintf("Below average by %d points", c.Gap)
	default:
		return "At department average"
	}
}

type DepartmentOverview struct {
	DepartmentID      int64   `json:"department_id"`
	DepartmentName    string  `json:"department_name"`
	Month             int     `json:"month"`
	Year              int     `json:"year"`
	AvgScore          float64 `json:"avg_score"`
	ParticipationRate float64 `json:"participation_rate"`
	TotalHoursSaved   float64 `json:"total_hours_saved"`
	TotalEmployees    int     `json:"total_employees"`
	ActiveUsers       int     `json:"active_users"`
	ScoredUsers       int     `json:"scored_users"`
}

func NewDepartmentOverview(o *service.DepartmentOverview) DepartmentOverview {
	return DepartmentOverview{
		DepartmentID:      o.DepartmentID,
		DepartmentName:    o.DepartmentName,
		Month:             o.Period.Month,
		Year:              o.Period.Year,
		AvgScore:          o.AvgScore,
		ParticipationRate: o.ParticipationRate,
		TotalHoursSaved:   o.TotalHoursSaved,
		TotalEmployees:    o.TotalEmployees,
		ActiveUsers:       o.ActiveUsers,
		ScoredUsers:       o.ScoredUsers,
	}
}

type Metric struct {
	ID              int64     `json:"id"`
	EmployeeID      int64     `json:"employee_id"`
	Month           int       `json:"month"`
	Year            int       `json:"year"`
	AdoptionScore   *int      `json:"adoption_score"`
	TasksAIAssisted int       `json:"tasks_ai_assisted"`
	HoursSaved      float64   `json:"hours_saved"`
	ToolsExplored   int       `json:"tools_explored"`
	LearningHours   float64   `json:"learning_hours"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewMetric(m *model.AdoptionMetric) Metric {
	return Metric{
		ID:              m.ID,
		EmployeeID:      m.EmployeeID,
		Month:           m.Month,
		Year:            m.Year,
		AdoptionScore:   m.AdoptionScore,
		TasksAIAssisted: m.TasksAIAssisted,
		HoursSaved:      m.HoursSaved,
		ToolsExplored:   m.ToolsExplored,
		LearningHours:   m.LearningHours,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

type History struct {
	EmployeeID int64    `json:"employee_id"`
	Months     int      `json:"months"`
	Data       []Metric `json:"data"`
}

func NewHistory(employeeID int64, months int, metrics []*model.AdoptionMetric) History {
	h := History{EmployeeID: employeeID, Months: months, Data: make([]Metric, 0, len(metrics))}
	for _, m := range metrics {
		h.Data = append(h.Data, NewMetric(m))
	}
	return h
}

type TrendPeriod struct {
	Month             string  `json:"month"`
	AvgAdoptionScore  float64 `json:"avg_adoption_score"`
	TotalHoursSaved   float64 `json:"total_hours_saved"`
	AvgTasksAutomated float64 `json:"avg_tasks_automated"`
	UsersActive       int     `json:"users_active"`
}

func NewTrends(periods []service.TrendPeriod) []TrendPeriod {
	out := make([]TrendPeriod, 0, len(periods))
	for _, p := range periods {
		out = append(out, TrendPeriod{
			Month:             p.Period.String(),
			AvgAdoptionScore:  p.AvgAdoptionScore,
			TotalHoursSaved:   p.TotalHoursSaved,
			AvgTasksAutomated: p.AvgTasksAutomated,
			UsersActive:       p.UsersActive,
		})
	}
	return out
}

type ROI struct {
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	TotalHoursSaved float64 `json:"total_hours_saved"`
	HourlyRate      float64 `json:"hourly_rate"`
	TotalROI        float64 `json:"total_roi"`
	UsersImpacted   int     `json:"users_impacted"`
	ROIPerUser      float64 `json:"roi_per_user"`
}

func NewROI(s *service.ROISummary) ROI {
	return ROI{
		Month:           s.Period.Month,
		Year:            s.Period.Year,
		TotalHoursSaved: s.TotalHoursSaved,
		HourlyRate:      s.HourlyRate,
		TotalROI:        s.TotalROI,
		UsersImpacted:   s.UsersImpacted,
		ROIPerUser:      s.ROIPerUser,
	}
}

type Rollup struct {
	Month       int                  `json:"month"`
	Year        int                  `json:"year"`
	Departments []DepartmentOverview `json:"departments"`
}

func NewRollup(month, year int, overviews []*service.DepartmentOverview) Rollup {
	r := Rollup{Month: month, Year: year, Departments: make([]DepartmentOverview, 0, len(overviews))}
	for _, o := range overviews {
		r.Departments = append(r.Departments, NewDepartmentOverview(o))
	}
	return r
}
