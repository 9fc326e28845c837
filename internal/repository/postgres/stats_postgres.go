package postgres

import (
	"context"
	"database/sql"

	"scholarstream/internal/model"
	"scholarstream/internal/repository"
)

// StatsPostgres runs the admin dashboard aggregations. Each method is one
// independent statement on the shared pool.
type StatsPostgres struct {
	db *sql.DB
}

func NewStatsPostgres(db *sql.DB) *StatsPostgres {
	return &StatsPostgres{db: db}
}

var _ repository.StatsRepository = (*StatsPostgres)(nil)

func (r *StatsPostgres) count(ctx context.Context, table string) (int64, error) {
	var n int64
	// table is always one of the constants below, never user input.
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *StatsPostgres) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, "users")
}

func (r *StatsPostgres) CountScholarships(ctx context.Context) (int64, error) {
	return r.count(ctx, "scholarships")
}

func (r *StatsPostgres) CountApplications(ctx context.Context) (int64, error) {
	return r.count(ctx, "applications")
}

func (r *StatsPostgres) SumApplicationFees(ctx context.Context) (float64, error) {
	var sum float64
	const q = `SELECT COALESCE(SUM(application_fees), 0) FROM applications`
	if err := r.db.QueryRowContext(ctx, q).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

// ApplicationsByCategory groups applications by scholarship category, largest first.
func (r *StatsPostgres) ApplicationsByCategory(ctx context.Context) ([]model.CategoryCount, error) {
	const q = `
		SELECT scholarship_category, COUNT(*) AS count
		FROM applications
		GROUP BY scholarship_category
		ORDER BY count DESC, scholarship_category
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.CategoryCount, 0)
	for rows.Next() {
		var c model.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
