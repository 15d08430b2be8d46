// internal/service/fold.go
package service

import (
	"math"
	"sort"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"github.com/dangerclosesec/adoptionhub/internal/repository"
)

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// departmentFigures is the fold of one department's rows for one period.
type departmentFigures struct {
	AvgScore          float64
	ParticipationRate float64
	TotalHoursSaved   float64
	TotalEmployees    int
	ActiveUsers       int
	ScoredUsers       int
}

// foldDepartment computes the overview figures. Every present row counts
// as active; only non-null scores enter the average.
func foldDepartment(metrics []*model.AdoptionMetric, totalEmployees int64) departmentFigures {
	f := departmentFigures{
		TotalEmployees: int(totalEmployees),
		ActiveUsers:    len(metrics),
	}

	var scoreSum, hours float64
	for _, m := range metrics {
		hours += m.HoursSaved
		if m.AdoptionScore != nil {
			scoreSum += float64(*m.AdoptionScore)
			f.ScoredUsers++
		}
	}

	if f.ScoredUsers > 0 {
		f.AvgScore = round1(scoreSum / float64(f.ScoredUsers))
	}
	if f.TotalEmployees > 0 {
		rate := float64(f.ActiveUsers) / float64(f.TotalEmployees) * 100
		f.ParticipationRate = round1(math.Min(math.Max(rate, 0), 100))
	}
	f.TotalHoursSaved = round2(hours)
	return f
}

// averageScore is the mean of non-null scores. ok is false when none exist.
func averageScore(metrics []*model.AdoptionMetric) (avg float64, ok bool) {
	var sum float64
	var n int
	for _, m := range metrics {
		if m.AdoptionScore != nil {
			sum += float64(*m.AdoptionScore)
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// trendBucket accumulates one period of the population fold.
type trendBucket struct {
	scoreSum, hoursSum float64
	scores, hours      int
	taskSum, tasks     int
	rows               int
}

type trendFold struct {
	buckets map[domain.Period]*trendBucket
}

func newTrendFold() *trendFold {
	return &trendFold{buckets: make(map[domain.Period]*trendBucket)}
}

func (f *trendFold) add(row repository.PopulationRow) error {
	b, ok := f.buckets[row.Period]
	if !ok {
		b = &trendBucket{}
		f.buckets[row.Period] = b
	}
	b.rows++
	if row.AdoptionScore != nil {
		b.scoreSum += float64(*row.AdoptionScore)
		b.scores++
	}
	if row.HoursSaved != 0 {
		b.hoursSum += row.HoursSaved
		b.hours++
	}
	if row.TasksAIAssisted != 0 {
		b.taskSum += row.TasksAIAssisted
		b.tasks++
	}
	return nil
}

// points returns the most recent months periods in ascending calendar order.
func (f *trendFold) points(months int) []TrendPeriod {
	periods := make([]domain.Period, 0, len(f.buckets))
	for p := range f.buckets {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })
	if len(periods) > months {
		periods = periods[len(periods)-months:]
	}

	out := make([]TrendPeriod, 0, len(periods))
	for _, p := range periods {
		b := f.buckets[p]
		tp := TrendPeriod{Period: p, UsersActive: b.rows}
		if b.scores > 0 {
			tp.AvgAdoptionScore = round1(b.scoreSum / float64(b.scores))
		}
		if b.hours > 0 {
			tp.TotalHoursSaved = round1(b.hoursSum / float64(b.hours) * float64(b.rows))
		}
		if b.tasks > 0 {
			tp.AvgTasksAutomated = round1(float64(b.taskSum) / float64(b.tasks))
		}
		out = append(out, tp)
	}
	return out
}

// lastN returns the tail of an ascending slice.
func lastN[T any](items []T, n int) []T {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}
