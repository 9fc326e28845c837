package service

import (
	"context"

	"github.com/google/uuid"

	"scholarstream/internal/apperror"
	"scholarstream/internal/model"
	"scholarstream/internal/repository"
)

const (
	msgScholarshipNotFound = "Scholarship not found"

	// MaxSearchLimit caps the page size of the public listing.
	MaxSearchLimit = 100
)

// ScholarshipService manages scholarship postings and the public search.
type ScholarshipService interface {
	Create(ctx context.Context, in model.ScholarshipInput) (*model.Scholarship, error)
	Search(ctx context.Context, f model.ScholarshipFilter) ([]model.Scholarship, error)
	Get(ctx context.Context, id string) (*model.Scholarship, error)
	Update(ctx context.Context, id string, upd model.ScholarshipUpdate) (*model.Scholarship, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type scholarshipService struct {
	repo repository.ScholarshipRepository
}

func NewScholarshipService(repo repository.ScholarshipRepository) ScholarshipService {
	return &scholarshipService{repo: repo}
}

func (s *scholarshipService) Create(ctx context.Context, in model.ScholarshipInput) (*model.Scholarship, error) {
	if anyBlank(in.ScholarshipName, in.UniversityName, in.UniversityCountry, in.UniversityCity,
		in.SubjectCategory, in.ScholarshipCategory, in.Degree, in.ApplicationDeadline, in.PostedUserEmail) ||
		in.ApplicationFees == nil || in.ServiceCharge == nil {
		return nil, apperror.BadRequest(msgMissingFields)
	}

	ts := now()
	sc := &model.Scholarship{
		ID:                  uuid.NewString(),
		ScholarshipName:     in.ScholarshipName,
		UniversityName:      in.UniversityName,
		UniversityImage:     in.UniversityImage,
		UniversityCountry:   in.UniversityCountry,
		UniversityCity:      in.UniversityCity,
		SubjectCategory:     in.SubjectCategory,
		ScholarshipCategory: in.ScholarshipCategory,
		Degree:              in.Degree,
		TuitionFees:         in.TuitionFees,
		ApplicationFees:     *in.ApplicationFees,
		ServiceCharge:       *in.ServiceCharge,
		ApplicationDeadline: in.ApplicationDeadline,
		ScholarshipPostDate: ts,
		PostedUserEmail:     in.PostedUserEmail,
		CreatedAt:           ts,
		UpdatedAt:           ts,
	}
	if in.UniversityWorldRank != nil {
		sc.UniversityWorldRank = *in.UniversityWorldRank
	}

	created, err := s.repo.Create(ctx, sc)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return created, nil
}

// Search lists scholarships, newest first unless f.Sort says otherwise.
func (s *scholarshipService) Search(ctx context.Context, f model.ScholarshipFilter) ([]model.Scholarship, error) {
	if !f.Sort.Valid() {
		return nil, apperror.BadRequest("Invalid sort option")
	}
	if f.Limit < 0 || f.Limit > MaxSearchLimit {
		return nil, apperror.BadRequest("limit must be between 0 and 100")
	}
	if f.Offset < 0 {
		return nil, apperror.BadRequest("offset must not be negative")
	}

	list, err := s.repo.Search(ctx, f)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return list, nil
}

func (s *scholarshipService) Get(ctx context.Context, id string) (*model.Scholarship, error) {
	if err := checkID(id, "scholarship"); err != nil {
		return nil, err
	}
	sc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, msgScholarshipNotFound)
	}
	return sc, nil
}

func (s *scholarshipService) Update(ctx context.Context, id string, upd model.ScholarshipUpdate) (*model.Scholarship, error) {
	if err := checkID(id, "scholarship"); err != nil {
		return nil, err
	}
	// Required text fields are only overwritten with non-blank values.
	upd.ScholarshipName = nonBlank(upd.ScholarshipName)
	upd.UniversityName = nonBlank(upd.UniversityName)
	upd.UniversityCountry = nonBlank(upd.UniversityCountry)
	upd.UniversityCity = nonBlank(upd.UniversityCity)
	upd.SubjectCategory = nonBlank(upd.SubjectCategory)
	upd.ScholarshipCategory = nonBlank(upd.ScholarshipCategory)
	upd.Degree = nonBlank(upd.Degree)
	upd.ApplicationDeadline = nonBlank(upd.ApplicationDeadline)
	sc, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, storeError(err, msgScholarshipNotFound)
	}
	return sc, nil
}

// Delete removes the posting only; applications and reviews that reference it are kept.
func (s *scholarshipService) Delete(ctx context.Context, id string) (int64, error) {
	if err := checkID(id, "scholarship"); err != nil {
		return 0, err
	}
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	if n == 0 {
		return 0, apperror.NotFound(msgScholarshipNotFound)
	}
	return n, nil
}
