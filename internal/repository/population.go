// internal/repository/population.go
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/jackc/pgx/v5"
)

// Queryer is the subset of pgxpool.Pool used by the scanner.
type Queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PopulationRow is the projection of an adoption metric needed by the
// population-wide trend fold.
type PopulationRow struct {
	Period          domain.Period
	AdoptionScore   *int
	HoursSaved      float64
	TasksAIAssisted int
}

type PopulationScannerIface interface {
	Scan(ctx context.Context, fn func(PopulationRow) error) error
}

// PopulationScanner streams every adoption metric row over pgx without
// materializing the table.
type PopulationScanner struct {
	pool Queryer
}

func NewPopulationScanner(pool Queryer) *PopulationScanner {
	return &PopulationScanner{pool: pool}
}

const populationQuery = `
        SELECT month, year, adoption_score, hours_saved::float8, tasks_ai_assisted
          FROM ai_adoption_metrics
         ORDER BY year, month
    `

// Scan calls fn for each row in ascending period order. An error from fn stops the scan.
func (s *PopulationScanner) Scan(ctx context.Context, fn func(PopulationRow) error) error {
	rows, err := s.pool.Query(ctx, populationQuery)
	if err != nil {
		return fmt.Errorf("failed to scan adoption metrics: %w", translateError(err, domain.ErrNotFound))
	}
	defer rows.Close()

	for rows.Next() {
		var (
			row   PopulationRow
			score sql.NullInt64
		)
		if err := rows.Scan(&row.Period.Month, &row.Period.Year, &score, &row.HoursSaved, &row.TasksAIAssisted); err != nil {
			return fmt.Errorf("failed to read adoption metric row: %w", err)
		}
		if score.Valid {
			v := int(score.Int64)
			row.AdoptionScore = &v
		}
		if err := fn(row); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate adoption metrics: %w", translateError(err, domain.ErrNotFound))
	}
	return nil
}
