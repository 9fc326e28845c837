package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"scholarstream/internal/model"
	"scholarstream/internal/repository"
)

var scholarshipColumns = []string{
	"id", "scholarship_name", "university_name", "university_image", "university_country",
	"university_city", "university_world_rank", "subject_category", "scholarship_category",
	"degree", "tuition_fees", "application_fees", "service_charge", "application_deadline",
	"scholarship_post_date", "posted_user_email", "created_at", "updated_at",
}

var scholarshipOrder = map[model.ScholarshipSort]string{
	model.SortDefault:  "scholarship_post_date DESC",
	model.SortDateDesc: "scholarship_post_date DESC",
	model.SortDateAsc:  "scholarship_post_date ASC",
	model.SortFeesAsc:  "application_fees ASC",
	model.SortFeesDesc: "application_fees DESC",
}

// ScholarshipPostgres is a PostgreSQL implementation of repository.ScholarshipRepository.
type ScholarshipPostgres struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

func NewScholarshipPostgres(db *sql.DB) *ScholarshipPostgres {
	return &ScholarshipPostgres{db: db, sb: builder()}
}

var _ repository.ScholarshipRepository = (*ScholarshipPostgres)(nil)

func scanScholarship(row rowScanner) (*model.Scholarship, error) {
	var s model.Scholarship
	err := row.Scan(
		&s.ID, &s.ScholarshipName, &s.UniversityName, &s.UniversityImage, &s.UniversityCountry,
		&s.UniversityCity, &s.UniversityWorldRank, &s.SubjectCategory, &s.ScholarshipCategory,
		&s.Degree, &s.TuitionFees, &s.ApplicationFees, &s.ServiceCharge, &s.ApplicationDeadline,
		&s.ScholarshipPostDate, &s.PostedUserEmail, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScholarshipPostgres) Create(ctx context.Context, s *model.Scholarship) (*model.Scholarship, error) {
	b := r.sb.Insert("scholarships").
		Columns(scholarshipColumns...).
		Values(
			s.ID, s.ScholarshipName, s.UniversityName, s.UniversityImage, s.UniversityCountry,
			s.UniversityCity, s.UniversityWorldRank, s.SubjectCategory, s.ScholarshipCategory,
			s.Degree, s.TuitionFees, s.ApplicationFees, s.ServiceCharge, s.ApplicationDeadline,
			s.ScholarshipPostDate, s.PostedUserEmail, s.CreatedAt, s.UpdatedAt,
		).
		Suffix(returning(scholarshipColumns))
	return queryOne(ctx, r.db, b, scanScholarship)
}

func (r *ScholarshipPostgres) FindByID(ctx context.Context, id string) (*model.Scholarship, error) {
	b := r.sb.Select(scholarshipColumns...).From("scholarships").Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, b, scanScholarship)
}

// Search lists scholarships matching f. Search is a case-insensitive substring
// match over name, university and degree; the other filters are exact.
func (r *ScholarshipPostgres) Search(ctx context.Context, f model.ScholarshipFilter) ([]model.Scholarship, error) {
	b := r.sb.Select(scholarshipColumns...).From("scholarships")

	if f.Search != "" {
		p := likePattern(f.Search)
		b = b.Where(sq.Or{
			sq.ILike{"scholarship_name": p},
			sq.ILike{"university_name": p},
			sq.ILike{"degree": p},
		})
	}
	if f.Country != "" {
		b = b.Where(sq.Eq{"university_country": f.Country})
	}
	if f.Category != "" {
		b = b.Where(sq.Eq{"scholarship_category": f.Category})
	}
	if f.Degree != "" {
		b = b.Where(sq.Eq{"degree": f.Degree})
	}

	order, ok := scholarshipOrder[f.Sort]
	if !ok {
		order = scholarshipOrder[model.SortDefault]
	}
	b = b.OrderBy(order, "id")

	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}
	return queryMany(ctx, r.db, b, scanScholarship)
}

func (r *ScholarshipPostgres) Update(ctx context.Context, id string, upd model.ScholarshipUpdate) (*model.Scholarship, error) {
	set := map[string]any{"updated_at": now()}
	setIf(set, "scholarship_name", upd.ScholarshipName)
	setIf(set, "university_name", upd.UniversityName)
	setIf(set, "university_image", upd.UniversityImage)
	setIf(set, "university_country", upd.UniversityCountry)
	setIf(set, "university_city", upd.UniversityCity)
	setIf(set, "university_world_rank", upd.UniversityWorldRank)
	setIf(set, "subject_category", upd.SubjectCategory)
	setIf(set, "scholarship_category", upd.ScholarshipCategory)
	setIf(set, "degree", upd.Degree)
	setIf(set, "tuition_fees", upd.TuitionFees)
	setIf(set, "application_fees", upd.ApplicationFees)
	setIf(set, "service_charge", upd.ServiceCharge)
	setIf(set, "application_deadline", upd.ApplicationDeadline)

	b := r.sb.Update("scholarships").SetMap(set).Where(sq.Eq{"id": id}).Suffix(returning(scholarshipColumns))
	return queryOne(ctx, r.db, b, scanScholarship)
}

func (r *ScholarshipPostgres) Delete(ctx context.Context, id string) (int64, error) {
	return exec(ctx, r.db, r.sb.Delete("scholarships").Where(sq.Eq{"id": id}))
}
