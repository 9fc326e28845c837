package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"scholarstream/internal/model"
	"scholarstream/internal/repository"
)

var applicationColumns = []string{
	"id", "scholarship_id", "user_id", "user_name", "user_email", "university_name",
	"scholarship_category", "degree", "application_fees", "service_charge",
	"application_status", "payment_status", "application_date", "feedback",
	"created_at", "updated_at",
}

// ApplicationPostgres is a PostgreSQL implementation of repository.ApplicationRepository.
// The (scholarship_id, user_email) unique constraint rejects duplicate submissions.
type ApplicationPostgres struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

func NewApplicationPostgres(db *sql.DB) *ApplicationPostgres {
	return &ApplicationPostgres{db: db, sb: builder()}
}

var _ repository.ApplicationRepository = (*ApplicationPostgres)(nil)

func scanApplication(row rowScanner) (*model.Application, error) {
	var a model.Application
	err := row.Scan(
		&a.ID, &a.ScholarshipID, &a.UserID, &a.UserName, &a.UserEmail, &a.UniversityName,
		&a.ScholarshipCategory, &a.Degree, &a.ApplicationFees, &a.ServiceCharge,
		&a.ApplicationStatus, &a.PaymentStatus, &a.ApplicationDate, &a.Feedback,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationPostgres) Create(ctx context.Context, a *model.Application) (*model.Application, error) {
	b := r.sb.Insert("applications").
		Columns(applicationColumns...).
		Values(
			a.ID, a.ScholarshipID, a.UserID, a.UserName, a.UserEmail, a.UniversityName,
			a.ScholarshipCategory, a.Degree, a.ApplicationFees, a.ServiceCharge,
			a.ApplicationStatus, a.PaymentStatus, a.ApplicationDate, a.Feedback,
			a.CreatedAt, a.UpdatedAt,
		).
		Suffix(returning(applicationColumns))
	return queryOne(ctx, r.db, b, scanApplication)
}

func (r *ApplicationPostgres) FindByID(ctx context.Context, id string) (*model.Application, error) {
	b := r.sb.Select(applicationColumns...).From("applications").Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, b, scanApplication)
}

func (r *ApplicationPostgres) List(ctx context.Context, f model.ApplicationFilter) ([]model.Application, error) {
	eq := sq.Eq{}
	if f.UserID != "" {
		eq["user_id"] = f.UserID
	}
	if f.UserEmail != "" {
		eq["user_email"] = f.UserEmail
	}
	if f.ScholarshipID != "" {
		eq["scholarship_id"] = f.ScholarshipID
	}
	if f.Status != "" {
		eq["application_status"] = f.Status
	}
	if f.PaymentStatus != "" {
		eq["payment_status"] = f.PaymentStatus
	}

	b := r.sb.Select(applicationColumns...).From("applications")
	if len(eq) > 0 {
		b = b.Where(eq)
	}
	b = b.OrderBy("application_date DESC", "id")
	return queryMany(ctx, r.db, b, scanApplication)
}

func (r *ApplicationPostgres) Update(ctx context.Context, id string, upd model.ApplicationUpdate) (*model.Application, error) {
	set := map[string]any{"updated_at": now()}
	setIf(set, "user_name", upd.UserName)
	setIf(set, "university_name", upd.UniversityName)
	setIf(set, "scholarship_category", upd.ScholarshipCategory)
	setIf(set, "degree", upd.Degree)
	setIf(set, "application_fees", upd.ApplicationFees)
	setIf(set, "service_charge", upd.ServiceCharge)
	setIf(set, "application_status", upd.ApplicationStatus)
	setIf(set, "payment_status", upd.PaymentStatus)
	setIf(set, "feedback", upd.Feedback)

	b := r.sb.Update("applications").SetMap(set).Where(sq.Eq{"id": id}).Suffix(returning(applicationColumns))
	return queryOne(ctx, r.db, b, scanApplication)
}

func (r *ApplicationPostgres) Delete(ctx context.Context, id string) (int64, error) {
	return exec(ctx, r.db, r.sb.Delete("applications").Where(sq.Eq{"id": id}))
}
