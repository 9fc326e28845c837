package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"scholarstream/internal/apperror"
	"scholarstream/internal/model"
	"scholarstream/internal/repository"
	repoMocks "scholarstream/internal/repository/mocks"
)

func ptr[T any](v T) *T { return &v }

func validScholarshipInput() model.ScholarshipInput {
	return model.ScholarshipInput{
		ScholarshipName:     "Global Merit",
		UniversityName:      "Oxford",
		UniversityCountry:   "UK",
		UniversityCity:      "Oxford",
		SubjectCategory:     "Science",
		ScholarshipCategory: "Full fund",
		Degree:              "Masters",
		ApplicationFees:     ptr(0.0),
		ServiceCharge:       ptr(10.0),
		ApplicationDeadline: "2026-12-31",
		PostedUserEmail:     "admin@example.com",
	}
}

func TestScholarshipService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("zero fee is present", func(t *testing.T) {
		repo := new(repoMocks.MockScholarshipRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(s *model.Scholarship) bool {
			return s.ApplicationFees == 0 && s.ServiceCharge == 10 && s.UniversityWorldRank == 0 &&
				!s.ScholarshipPostDate.IsZero()
		})).Return(&model.Scholarship{ID: validID}, nil)

		got, err := NewScholarshipService(repo).Create(ctx, validScholarshipInput())

		require.NoError(t, err)
		assert.Equal(t, validID, got.ID)
		repo.AssertExpectations(t)
	})

	t.Run("missing fee", func(t *testing.T) {
		in := validScholarshipInput()
		in.ServiceCharge = nil

		_, err := NewScholarshipService(new(repoMocks.MockScholarshipRepository)).Create(ctx, in)

		assert.EqualError(t, err, "Missing required fields")
	})

	t.Run("blank name", func(t *testing.T) {
		in := validScholarshipInput()
		in.ScholarshipName = "   "

		_, err := NewScholarshipService(new(repoMocks.MockScholarshipRepository)).Create(ctx, in)

		assert.True(t, apperror.Is(err, apperror.KindBadRequest))
	})
}

func TestScholarshipService_Search(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  model.ScholarshipFilter
		wantMsg string
	}{
		{"unknown sort", model.ScholarshipFilter{Sort: "name_asc"}, "Invalid sort option"},
		{"limit too big", model.ScholarshipFilter{Limit: 101}, "limit must be between 0 and 100"},
		{"negative limit", model.ScholarshipFilter{Limit: -1}, "limit must be between 0 and 100"},
		{"negative offset", model.ScholarshipFilter{Offset: -5}, "offset must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repoMocks.MockScholarshipRepository)
			_, err := NewScholarshipService(repo).Search(ctx, tt.filter)
			assert.EqualError(t, err, tt.wantMsg)
			repo.AssertNotCalled(t, "Search")
		})
	}

	t.Run("passes filter through", func(t *testing.T) {
		repo := new(repoMocks.MockScholarshipRepository)
		f := model.ScholarshipFilter{Search: "ox", Sort: model.SortFeesDesc, Limit: 100}
		repo.On("Search", ctx, f).Return([]model.Scholarship{{ID: validID}}, nil)

		got, err := NewScholarshipService(repo).Search(ctx, f)

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestScholarshipService_Update(t *testing.T) {
	ctx := context.Background()

	repo := new(repoMocks.MockScholarshipRepository)
	repo.On("Update", ctx, validID, model.ScholarshipUpdate{}).Return(nil, repository.ErrNotFound)

	_, err := NewScholarshipService(repo).Update(ctx, validID, model.ScholarshipUpdate{})

	assert.EqualError(t, err, "Scholarship not found")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestScholarshipService_Update_BlankFields(t *testing.T) {
	ctx := context.Background()

	repo := new(repoMocks.MockScholarshipRepository)
	city := "Cambridge"
	repo.On("Update", ctx, validID, model.ScholarshipUpdate{UniversityCity: &city}).
		Return(&model.Scholarship{ID: validID, ScholarshipName: "Global Merit", UniversityCity: city}, nil)

	got, err := NewScholarshipService(repo).Update(ctx, validID, model.ScholarshipUpdate{
		ScholarshipName:     ptr(""),
		UniversityName:      ptr(" "),
		UniversityCountry:   ptr(""),
		UniversityCity:      &city,
		SubjectCategory:     ptr(""),
		ScholarshipCategory: ptr(""),
		Degree:              ptr("\t"),
		ApplicationDeadline: ptr(""),
	})

	require.NoError(t, err)
	assert.Equal(t, "Global Merit", got.ScholarshipName)
	repo.AssertExpectations(t)
}
