// Package repository defines persistence contracts. Implementations live in
// subpackages (postgres) and contain no business rules.
package repository

import (
	"context"
	"errors"

	"scholarstream/internal/model"
)

var (
	// ErrNotFound is returned when no row matches the given key.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("record already exists")
)

// UserRepository stores users. Email uniqueness is enforced by the store.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	// Update applies the non-nil fields and stamps updated_at.
	Update(ctx context.Context, id string, upd model.UserUpdate) (*model.User, error)
	// Delete returns the number of removed rows.
	Delete(ctx context.Context, id string) (int64, error)
}

// ScholarshipRepository stores scholarships.
type ScholarshipRepository interface {
	Create(ctx context.Context, s *model.Scholarship) (*model.Scholarship, error)
	FindByID(ctx context.Context, id string) (*model.Scholarship, error)
	Search(ctx context.Context, f model.ScholarshipFilter) ([]model.Scholarship, error)
	Update(ctx context.Context, id string, upd model.ScholarshipUpdate) (*model.Scholarship, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// ApplicationRepository stores applications. At most one row exists per
// (scholarship, applicant email); a second insert yields ErrConflict.
type ApplicationRepository interface {
	Create(ctx context.Context, a *model.Application) (*model.Application, error)
	FindByID(ctx context.Context, id string) (*model.Application, error)
	List(ctx context.Context, f model.ApplicationFilter) ([]model.Application, error)
	Update(ctx context.Context, id string, upd model.ApplicationUpdate) (*model.Application, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// ReviewRepository stores reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *model.Review) (*model.Review, error)
	FindByID(ctx context.Context, id string) (*model.Review, error)
	List(ctx context.Context, f model.ReviewFilter) ([]model.Review, error)
	Update(ctx context.Context, id string, upd model.ReviewUpdate) (*model.Review, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// StatsRepository answers the read-only aggregations behind the admin dashboard.
// Each method is a separate statement; callers may run them concurrently.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountScholarships(ctx context.Context) (int64, error)
	CountApplications(ctx context.Context) (int64, error)
	SumApplicationFees(ctx context.Context) (float64, error)
	ApplicationsByCategory(ctx context.Context) ([]model.CategoryCount, error)
}
