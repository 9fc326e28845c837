package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"scholarstream/internal/model"
	"scholarstream/internal/repository"
)

var userColumns = []string{"id", "name", "email", "photo_url", "role", "created_at", "updated_at"}

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db, sb: builder()}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

func scanUser(row rowScanner) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PhotoURL, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a user. A duplicate email yields repository.ErrConflict.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	b := r.sb.Insert("users").
		Columns(userColumns...).
		Values(u.ID, u.Name, u.Email, u.PhotoURL, u.Role, u.CreatedAt, u.UpdatedAt).
		Suffix(returning(userColumns))
	return queryOne(ctx, r.db, b, scanUser)
}

func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	b := r.sb.Select(userColumns...).From("users").Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, b, scanUser)
}

func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	b := r.sb.Select(userColumns...).From("users").Where(sq.Eq{"email": email})
	return queryOne(ctx, r.db, b, scanUser)
}

func (r *UserPostgres) List(ctx context.Context) ([]model.User, error) {
	b := r.sb.Select(userColumns...).From("users").OrderBy("created_at DESC", "id")
	return queryMany(ctx, r.db, b, scanUser)
}

func (r *UserPostgres) Update(ctx context.Context, id string, upd model.UserUpdate) (*model.User, error) {
	set := map[string]any{"updated_at": now()}
	setIf(set, "name", upd.Name)
	setIf(set, "email", upd.Email)
	setIf(set, "photo_url", upd.PhotoURL)
	setIf(set, "role", upd.Role)

	b := r.sb.Update("users").SetMap(set).Where(sq.Eq{"id": id}).Suffix(returning(userColumns))
	return queryOne(ctx, r.db, b, scanUser)
}

func (r *UserPostgres) Delete(ctx context.Context, id string) (int64, error) {
	return exec(ctx, r.db, r.sb.Delete("users").Where(sq.Eq{"id": id}))
}
