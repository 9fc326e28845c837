package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"scholarstream/internal/apperror"
	"scholarstream/internal/model"
	"scholarstream/internal/repository"
)

const msgUserNotFound = "User not found"

// UserService manages user accounts.
type UserService interface {
	Create(ctx context.Context, in model.UserInput) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, id string, upd model.UserUpdate) (*model.User, error)
	UpdateRole(ctx context.Context, id string, role model.Role) (*model.User, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Create registers a user. The store's unique email constraint decides duplicates.
func (s *userService) Create(ctx context.Context, in model.UserInput) (*model.User, error) {
	if anyBlank(in.Name, in.Email, string(in.Role)) {
		return nil, apperror.BadRequest("Missing required fields: name, email, role")
	}
	if !in.Role.Valid() {
		return nil, apperror.BadRequest("Invalid role")
	}

	ts := now()
	u := &model.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		PhotoURL:  in.PhotoURL,
		Role:      in.Role,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	created, err := s.repo.Create(ctx, u)
	if errors.Is(err, repository.ErrConflict) {
		return nil, apperror.Conflict("User with this email already exists")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return created, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	if err := checkID(id, "user"); err != nil {
		return nil, err
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, msgUserNotFound)
	}
	return u, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if blank(email) {
		return nil, apperror.BadRequest("Email is required")
	}
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, storeError(err, msgUserNotFound)
	}
	return u, nil
}

func (s *userService) Update(ctx context.Context, id string, upd model.UserUpdate) (*model.User, error) {
	if err := checkID(id, "user"); err != nil {
		return nil, err
	}
	if upd.Role != nil && !upd.Role.Valid() {
		return nil, apperror.BadRequest("Invalid role")
	}
	// Name and email are required; blank values leave the stored ones alone.
	upd.Name = nonBlank(upd.Name)
	upd.Email = nonBlank(upd.Email)
	return s.update(ctx, id, upd)
}

func (s *userService) UpdateRole(ctx context.Context, id string, role model.Role) (*model.User, error) {
	if err := checkID(id, "user"); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, apperror.BadRequest("Invalid role")
	}
	return s.update(ctx, id, model.UserUpdate{Role: &role})
}

func (s *userService) update(ctx context.Context, id string, upd model.UserUpdate) (*model.User, error) {
	u, err := s.repo.Update(ctx, id, upd)
	if errors.Is(err, repository.ErrConflict) {
		return nil, apperror.Conflict("User with this email already exists")
	}
	if err != nil {
		return nil, storeError(err, msgUserNotFound)
	}
	return u, nil
}

func (s *userService) Delete(ctx context.Context, id string) (int64, error) {
	if err := checkID(id, "user"); err != nil {
		return 0, err
	}
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	if n == 0 {
		return 0, apperror.NotFound(msgUserNotFound)
	}
	return n, nil
}
