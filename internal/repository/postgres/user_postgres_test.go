package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarstream/internal/model"
	"scholarstream/internal/repository"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns)
}

func TestUserPostgres_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserPostgres(db)
	ctx := context.Background()

	ts := time.Now().UTC()
	u := &model.User{
		ID:        "0b0c3f4e-3a55-4d8e-8f0e-7c3d1c2b9a10",
		Name:      "Ada",
		Email:     "ada@example.com",
		PhotoURL:  "https://img/ada.png",
		Role:      model.RoleApplicant,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users (.+) RETURNING`).
			WithArgs(u.ID, u.Name, u.Email, u.PhotoURL, u.Role, u.CreatedAt, u.UpdatedAt).
			WillReturnRows(userRows().AddRow(u.ID, u.Name, u.Email, u.PhotoURL, "Applicant", ts, ts))

		got, err := repo.Create(ctx, u)

		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.Equal(t, model.RoleApplicant, got.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		got, err := repo.Create(ctx, u)

		assert.ErrorIs(t, err, repository.ErrConflict)
		assert.Nil(t, got)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_Find(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserPostgres(db)
	ctx := context.Background()
	ts := time.Now()

	t.Run("by id", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
			WithArgs("u1").
			WillReturnRows(userRows().AddRow("u1", "Ada", "ada@example.com", "", "Admin", ts, ts))

		u, err := repo.FindByID(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, u.Role)
	})

	t.Run("by email", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
			WithArgs("ada@example.com").
			WillReturnRows(userRows().AddRow("u1", "Ada", "ada@example.com", "", "Moderator", ts, ts))

		u, err := repo.FindByEmail(ctx, "ada@example.com")

		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		u, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, u)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserPostgres(db)
	ts := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM users ORDER BY created_at DESC, id`).
		WillReturnRows(userRows().
			AddRow("u2", "Bob", "bob@example.com", "", "Applicant", ts, ts).
			AddRow("u1", "Ada", "ada@example.com", "", "Admin", ts, ts))

	users, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "u2", users[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_List_Empty(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserPostgres(db)

	mock.ExpectQuery(`SELECT (.+) FROM users`).WillReturnRows(userRows())

	users, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserPostgres_Update(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserPostgres(db)
	ctx := context.Background()
	ts := time.Now()

	name := "Ada L."
	role := model.RoleModerator

	mock.ExpectQuery(`UPDATE users SET name = \$1, role = \$2, updated_at = \$3 WHERE id = \$4 RETURNING`).
		WithArgs(name, role, sqlmock.AnyArg(), "u1").
		WillReturnRows(userRows().AddRow("u1", name, "ada@example.com", "", "Moderator", ts, ts))

	u, err := repo.Update(ctx, "u1", model.UserUpdate{Name: &name, Role: &role})

	require.NoError(t, err)
	assert.Equal(t, name, u.Name)
	assert.Equal(t, model.RoleModerator, u.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_Update_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserPostgres(db)

	mock.ExpectQuery(`UPDATE users SET updated_at = \$1 WHERE id = \$2`).
		WithArgs(sqlmock.AnyArg(), "gone").
		WillReturnRows(userRows())

	u, err := repo.Update(context.Background(), "gone", model.UserUpdate{})

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, u)
}

func TestUserPostgres_Delete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserPostgres(db)

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs("u2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.Delete(context.Background(), "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.Delete(context.Background(), "u2")
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, mock.ExpectationsWereMet())
}
