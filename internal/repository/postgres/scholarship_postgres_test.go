package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarstream/internal/model"
)

func scholarshipRow(rows *sqlmock.Rows, id string, fees float64) *sqlmock.Rows {
	ts := time.Now()
	return rows.AddRow(
		id, "Global Merit", "Oxford", "", "UK", "Oxford", 3, "Science", "Full fund",
		"Masters", nil, fees, 10.0, "2026-12-31", ts, "admin@example.com", ts, ts,
	)
}

func TestScholarshipPostgres_Search(t *testing.T) {
	db, mock := newMock(t)
	repo := NewScholarshipPostgres(db)
	ctx := context.Background()

	t.Run("all filters", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM scholarships WHERE \(scholarship_name ILIKE \$1 OR university_name ILIKE \$2 OR degree ILIKE \$3\) AND university_country = \$4 AND scholarship_category = \$5 AND degree = \$6 ORDER BY application_fees ASC, id LIMIT 10 OFFSET 20`).
			WithArgs("%ox%", "%ox%", "%ox%", "UK", "Full fund", "Masters").
			WillReturnRows(scholarshipRow(sqlmock.NewRows(scholarshipColumns), "s1", 25))

		got, err := repo.Search(ctx, model.ScholarshipFilter{
			Search:   "ox",
			Country:  "UK",
			Category: "Full fund",
			Degree:   "Masters",
			Sort:     model.SortFeesAsc,
			Limit:    10,
			Offset:   20,
		})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 25.0, got[0].ApplicationFees)
		assert.Nil(t, got[0].TuitionFees)
	})

	t.Run("defaults to newest first", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM scholarships ORDER BY scholarship_post_date DESC, id$`).
			WillReturnRows(sqlmock.NewRows(scholarshipColumns))

		got, err := repo.Search(ctx, model.ScholarshipFilter{})

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScholarshipPostgres_CreateAndUpdate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewScholarshipPostgres(db)
	ctx := context.Background()

	ts := time.Now().UTC()
	s := &model.Scholarship{
		ID: "s1", ScholarshipName: "Global Merit", UniversityName: "Oxford",
		UniversityCountry: "UK", UniversityCity: "Oxford", UniversityWorldRank: 3,
		SubjectCategory: "Science", ScholarshipCategory: "Full fund", Degree: "Masters",
		ApplicationFees: 25, ServiceCharge: 10, ApplicationDeadline: "2026-12-31",
		ScholarshipPostDate: ts, PostedUserEmail: "admin@example.com", CreatedAt: ts, UpdatedAt: ts,
	}

	mock.ExpectQuery(`INSERT INTO scholarships (.+) RETURNING`).
		WillReturnRows(scholarshipRow(sqlmock.NewRows(scholarshipColumns), "s1", 25))

	created, err := repo.Create(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, "s1", created.ID)

	fees := 40.0
	mock.ExpectQuery(`UPDATE scholarships SET application_fees = \$1, updated_at = \$2 WHERE id = \$3`).
		WithArgs(fees, sqlmock.AnyArg(), "s1").
		WillReturnRows(scholarshipRow(sqlmock.NewRows(scholarshipColumns), "s1", fees))

	updated, err := repo.Update(ctx, "s1", model.ScholarshipUpdate{ApplicationFees: &fees})
	require.NoError(t, err)
	assert.Equal(t, fees, updated.ApplicationFees)

	assert.NoError(t, mock.ExpectationsWereMet())
}
