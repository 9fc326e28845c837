// Package postgres implements the repository contracts on PostgreSQL using
// database/sql and squirrel-built statements.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"scholarstream/internal/repository"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

var now = func() time.Time { return time.Now().UTC() }

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func returning(cols []string) string {
	return "RETURNING " + strings.Join(cols, ", ")
}

// mapError converts driver errors into repository sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", repository.ErrConflict, pgErr.ConstraintName)
	}
	return err
}

func queryOne[T any](ctx context.Context, db *sql.DB, b sq.Sqlizer, scan func(rowScanner) (*T, error)) (*T, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	out, err := scan(db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func queryMany[T any](ctx context.Context, db *sql.DB, b sq.Sqlizer, scan func(rowScanner) (*T, error)) ([]T, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func exec(ctx context.Context, db *sql.DB, b sq.Sqlizer) (int64, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	res, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, mapError(err)
	}
	return res.RowsAffected()
}

// likePattern wraps s for a substring ILIKE match, escaping wildcards.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// setIf adds col=v to m when v is non-nil.
func setIf[T any](m map[string]any, col string, v *T) {
	if v != nil {
		m[col] = *v
	}
}
