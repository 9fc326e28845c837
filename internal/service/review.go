package service

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"scholarstream/internal/apperror"
	"scholarstream/internal/model"
	"scholarstream/internal/repository"
)

const (
	msgReviewNotFound = "Review not found"
	msgRatingRange    = "Rating point must be between 1 and 5"
)

// ScholarshipReviews is the per-scholarship review summary.
type ScholarshipReviews struct {
	Total         int            `json:"total"`
	AverageRating string         `json:"averageRating"`
	Reviews       []model.Review `json:"reviews"`
}

// ReviewService manages reviews and rating summaries.
type ReviewService interface {
	Create(ctx context.Context, in model.ReviewInput) (*model.Review, error)
	List(ctx context.Context, f model.ReviewFilter) ([]model.Review, error)
	ForScholarship(ctx context.Context, scholarshipID string) (*ScholarshipReviews, error)
	Get(ctx context.Context, id string) (*model.Review, error)
	Update(ctx context.Context, id string, upd model.ReviewUpdate) (*model.Review, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type reviewService struct {
	repo repository.ReviewRepository
}

func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func validRating(r int) bool {
	return r >= model.MinRating && r <= model.MaxRating
}

func (s *reviewService) Create(ctx context.Context, in model.ReviewInput) (*model.Review, error) {
	if anyBlank(in.ScholarshipID, in.UniversityName, in.UserName, in.UserEmail, in.ReviewComment) ||
		in.RatingPoint == nil {
		return nil, apperror.BadRequest(msgMissingFields)
	}
	scholarshipID, err := canonicalID(in.ScholarshipID, "scholarship")
	if err != nil {
		return nil, err
	}
	if !validRating(*in.RatingPoint) {
		return nil, apperror.BadRequest(msgRatingRange)
	}

	ts := now()
	rv := &model.Review{
		ID:             uuid.NewString(),
		ScholarshipID:  scholarshipID,
		UniversityName: in.UniversityName,
		UserName:       in.UserName,
		UserEmail:      in.UserEmail,
		UserImage:      in.UserImage,
		RatingPoint:    *in.RatingPoint,
		ReviewComment:  in.ReviewComment,
		ReviewDate:     ts,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}
	created, err := s.repo.Create(ctx, rv)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return created, nil
}

func (s *reviewService) List(ctx context.Context, f model.ReviewFilter) ([]model.Review, error) {
	if f.MinRating < 0 {
		return nil, apperror.BadRequest("minRating must not be negative")
	}
	f.ScholarshipID = normalizeID(f.ScholarshipID)
	list, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return list, nil
}

// ForScholarship returns the reviews of one scholarship with their mean rating
// formatted to two decimals. A scholarship without reviews is reported as not found.
func (s *reviewService) ForScholarship(ctx context.Context, scholarshipID string) (*ScholarshipReviews, error) {
	scholarshipID, err := canonicalID(scholarshipID, "scholarship")
	if err != nil {
		return nil, err
	}
	list, err := s.repo.List(ctx, model.ReviewFilter{ScholarshipID: scholarshipID})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(list) == 0 {
		return nil, apperror.NotFound("No reviews found for this scholarship")
	}

	return &ScholarshipReviews{
		Total:         len(list),
		AverageRating: averageRating(list),
		Reviews:       list,
	}, nil
}

func averageRating(list []model.Review) string {
	var sum int
	for _, r := range list {
		sum += r.RatingPoint
	}
	return strconv.FormatFloat(float64(sum)/float64(len(list)), 'f', 2, 64)
}

func (s *reviewService) Get(ctx context.Context, id string) (*model.Review, error) {
	if err := checkID(id, "review"); err != nil {
		return nil, err
	}
	rv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, msgReviewNotFound)
	}
	return rv, nil
}

// Update checks the rating only when one is supplied.
func (s *reviewService) Update(ctx context.Context, id string, upd model.ReviewUpdate) (*model.Review, error) {
	if err := checkID(id, "review"); err != nil {
		return nil, err
	}
	if upd.RatingPoint != nil && !validRating(*upd.RatingPoint) {
		return nil, apperror.BadRequest(msgRatingRange)
	}
	rv, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, storeError(err, msgReviewNotFound)
	}
	return rv, nil
}

func (s *reviewService) Delete(ctx context.Context, id string) (int64, error) {
	if err := checkID(id, "review"); err != nil {
		return 0, err
	}
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	if n == 0 {
		return 0, apperror.NotFound(msgReviewNotFound)
	}
	return n, nil
}
