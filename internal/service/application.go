package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"scholarstream/internal/apperror"
	"scholarstream/internal/model"
	"scholarstream/internal/repository"
)

const msgApplicationNotFound = "Application not found"

// ApplicationService manages scholarship applications.
type ApplicationService interface {
	Create(ctx context.Context, in model.ApplicationInput) (*model.Application, error)
	List(ctx context.Context, f model.ApplicationFilter) ([]model.Application, error)
	ListByEmail(ctx context.Context, email string) ([]model.Application, error)
	Get(ctx context.Context, id string) (*model.Application, error)
	Update(ctx context.Context, id string, upd model.ApplicationUpdate) (*model.Application, error)
	UpdateStatus(ctx context.Context, id, status string, feedback *string) (*model.Application, error)
	UpdatePayment(ctx context.Context, id, paymentStatus string) (*model.Application, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type applicationService struct {
	repo repository.ApplicationRepository
}

func NewApplicationService(repo repository.ApplicationRepository) ApplicationService {
	return &applicationService{repo: repo}
}

func validPayment(p string) bool {
	return p == model.PaymentUnpaid || p == model.PaymentPaid
}

// Create submits an application. New applications always start pending; a
// second application by the same email for the same scholarship is a conflict.
func (s *applicationService) Create(ctx context.Context, in model.ApplicationInput) (*model.Application, error) {
	if anyBlank(in.ScholarshipID, in.UserID, in.UserName, in.UserEmail, in.UniversityName,
		in.ScholarshipCategory, in.Degree) || in.ApplicationFees == nil || in.ServiceCharge == nil {
		return nil, apperror.BadRequest(msgMissingFields)
	}
	scholarshipID, err := canonicalID(in.ScholarshipID, "scholarship")
	if err != nil {
		return nil, err
	}
	payment := in.PaymentStatus
	if payment == "" {
		payment = model.PaymentUnpaid
	}
	if !validPayment(payment) {
		return nil, apperror.BadRequest("paymentStatus must be unpaid or paid")
	}

	ts := now()
	a := &model.Application{
		ID:                  uuid.NewString(),
		ScholarshipID:       scholarshipID,
		UserID:              in.UserID,
		UserName:            in.UserName,
		UserEmail:           in.UserEmail,
		UniversityName:      in.UniversityName,
		ScholarshipCategory: in.ScholarshipCategory,
		Degree:              in.Degree,
		ApplicationFees:     *in.ApplicationFees,
		ServiceCharge:       *in.ServiceCharge,
		ApplicationStatus:   model.StatusPending,
		PaymentStatus:       payment,
		ApplicationDate:     ts,
		Feedback:            in.Feedback,
		CreatedAt:           ts,
		UpdatedAt:           ts,
	}
	created, err := s.repo.Create(ctx, a)
	if errors.Is(err, repository.ErrConflict) {
		return nil, apperror.Conflict("You have already applied for this scholarship")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return created, nil
}

func (s *applicationService) List(ctx context.Context, f model.ApplicationFilter) ([]model.Application, error) {
	f.ScholarshipID = normalizeID(f.ScholarshipID)
	list, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return list, nil
}

func (s *applicationService) ListByEmail(ctx context.Context, email string) ([]model.Application, error) {
	if blank(email) {
		return nil, apperror.BadRequest("Email is required")
	}
	return s.List(ctx, model.ApplicationFilter{UserEmail: email})
}

func (s *applicationService) Get(ctx context.Context, id string) (*model.Application, error) {
	if err := checkID(id, "application"); err != nil {
		return nil, err
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, msgApplicationNotFound)
	}
	return a, nil
}

func (s *applicationService) Update(ctx context.Context, id string, upd model.ApplicationUpdate) (*model.Application, error) {
	if err := checkID(id, "application"); err != nil {
		return nil, err
	}
	if upd.PaymentStatus != nil && !validPayment(*upd.PaymentStatus) {
		return nil, apperror.BadRequest("paymentStatus must be unpaid or paid")
	}
	if upd.ApplicationStatus != nil && blank(*upd.ApplicationStatus) {
		return nil, apperror.BadRequest("applicationStatus is required")
	}
	return s.update(ctx, id, upd)
}

// UpdateStatus records a moderator decision. Any non-empty status is accepted.
func (s *applicationService) UpdateStatus(ctx context.Context, id, status string, feedback *string) (*model.Application, error) {
	if err := checkID(id, "application"); err != nil {
		return nil, err
	}
	if blank(status) {
		return nil, apperror.BadRequest("applicationStatus is required")
	}
	return s.update(ctx, id, model.ApplicationUpdate{ApplicationStatus: &status, Feedback: feedback})
}

func (s *applicationService) UpdatePayment(ctx context.Context, id, paymentStatus string) (*model.Application, error) {
	if err := checkID(id, "application"); err != nil {
		return nil, err
	}
	if blank(paymentStatus) {
		return nil, apperror.BadRequest("paymentStatus is required")
	}
	if !validPayment(paymentStatus) {
		return nil, apperror.BadRequest("paymentStatus must be unpaid or paid")
	}
	return s.update(ctx, id, model.ApplicationUpdate{PaymentStatus: &paymentStatus})
}

func (s *applicationService) update(ctx context.Context, id string, upd model.ApplicationUpdate) (*model.Application, error) {
	a, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, storeError(err, msgApplicationNotFound)
	}
	return a, nil
}

func (s *applicationService) Delete(ctx context.Context, id string) (int64, error) {
	if err := checkID(id, "application"); err != nil {
		return 0, err
	}
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	if n == 0 {
		return 0, apperror.NotFound(msgApplicationNotFound)
	}
	return n, nil
}
