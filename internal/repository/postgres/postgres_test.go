package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"scholarstream/internal/repository"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(sql.ErrNoRows), repository.ErrNotFound)

	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	err := mapError(dup)
	assert.ErrorIs(t, err, repository.ErrConflict)
	assert.Contains(t, err.Error(), "users_email_key")

	other := &pgconn.PgError{Code: "23503"}
	assert.Same(t, other, mapError(other))

	plain := errors.New("boom")
	assert.Equal(t, plain, mapError(plain))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%oxford%", likePattern("oxford"))
	assert.Equal(t, `%50\%\_off%`, likePattern("50%_off"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
}
