package domain

import (
	"fmt"
	"time"
)

// Period identifies one monthly reporting cycle.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// PeriodOf returns the period containing t, evaluated in UTC.
func PeriodOf(t time.Time) Period {
	t = t.UTC()
	return Period{Month: int(t.Month()), Year: t.Year()}
}

// ParsePeriod parses a "YYYY-MM" key.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	return PeriodOf(t), nil
}

// Prev returns the preceding period. January wraps to December of the previous year.
func (p Period) Prev() Period {
	if p.Month == 1 {
		return Period{Month: 12, Year: p.Year - 1}
	}
	return Period{Month: p.Month - 1, Year: p.Year}
}

// Valid reports whether the month is in 1..12 and the year is positive.
func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year > 0
}

// Index maps the period onto a monotonically increasing month counter.
func (p Period) Index() int {
	return p.Year*12 + (p.Month - 1)
}

// Before reports whether p is chronologically earlier than o.
func (p Period) Before(o Period) bool {
	return p.Index() < o.Index()
}

// String renders the zero-padded "YYYY-MM" key.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}
