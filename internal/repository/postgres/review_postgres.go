package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"scholarstream/internal/model"
	"scholarstream/internal/repository"
)

var reviewColumns = []string{
	"id", "scholarship_id", "university_name", "user_name", "user_email", "user_image",
	"rating_point", "review_comment", "review_date", "created_at", "updated_at",
}

// ReviewPostgres is a PostgreSQL implementation of repository.ReviewRepository.
type ReviewPostgres struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

func NewReviewPostgres(db *sql.DB) *ReviewPostgres {
	return &ReviewPostgres{db: db, sb: builder()}
}

var _ repository.ReviewRepository = (*ReviewPostgres)(nil)

func scanReview(row rowScanner) (*model.Review, error) {
	var rv model.Review
	err := row.Scan(
		&rv.ID, &rv.ScholarshipID, &rv.UniversityName, &rv.UserName, &rv.UserEmail, &rv.UserImage,
		&rv.RatingPoint, &rv.ReviewComment, &rv.ReviewDate, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewPostgres) Create(ctx context.Context, rv *model.Review) (*model.Review, error) {
	b := r.sb.Insert("reviews").
		Columns(reviewColumns...).
		Values(
			rv.ID, rv.ScholarshipID, rv.UniversityName, rv.UserName, rv.UserEmail, rv.UserImage,
			rv.RatingPoint, rv.ReviewComment, rv.ReviewDate, rv.CreatedAt, rv.UpdatedAt,
		).
		Suffix(returning(reviewColumns))
	return queryOne(ctx, r.db, b, scanReview)
}

func (r *ReviewPostgres) FindByID(ctx context.Context, id string) (*model.Review, error) {
	b := r.sb.Select(reviewColumns...).From("reviews").Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, b, scanReview)
}

func (r *ReviewPostgres) List(ctx context.Context, f model.ReviewFilter) ([]model.Review, error) {
	b := r.sb.Select(reviewColumns...).From("reviews")
	if f.ScholarshipID != "" {
		b = b.Where(sq.Eq{"scholarship_id": f.ScholarshipID})
	}
	if f.UniversityName != "" {
		b = b.Where(sq.ILike{"university_name": likePattern(f.UniversityName)})
	}
	if f.MinRating > 0 {
		b = b.Where(sq.GtOrEq{"rating_point": f.MinRating})
	}
	if f.UserEmail != "" {
		b = b.Where(sq.Eq{"user_email": f.UserEmail})
	}
	b = b.OrderBy("review_date DESC", "id")
	return queryMany(ctx, r.db, b, scanReview)
}

func (r *ReviewPostgres) Update(ctx context.Context, id string, upd model.ReviewUpdate) (*model.Review, error) {
	set := map[string]any{"updated_at": now()}
	setIf(set, "rating_point", upd.RatingPoint)
	setIf(set, "review_comment", upd.ReviewComment)
	setIf(set, "user_image", upd.UserImage)

	b := r.sb.Update("reviews").SetMap(set).Where(sq.Eq{"id": id}).Suffix(returning(reviewColumns))
	return queryOne(ctx, r.db, b, scanReview)
}

func (r *ReviewPostgres) Delete(ctx context.Context, id string) (int64, error) {
	return exec(ctx, r.db, r.sb.Delete("reviews").Where(sq.Eq{"id": id}))
}
