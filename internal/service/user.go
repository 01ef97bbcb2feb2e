package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"textila-api/internal/apperr"
	"textila-api/internal/dto"
	"textila-api/internal/model"
	"textila-api/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterUserRequest) (*model.User, bool, error)
	List(ctx context.Context) ([]*model.User, error)
	ChangeRole(ctx context.Context, id string, role string) error
	Approve(ctx context.Context, id string) error
	Suspend(ctx context.Context, id string, reason string) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(
	userRepo repository.UserRepository,
) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

// Register creates a user for a previously unseen email. The returned bool is
// true when the email was already registered; that case is a notice, not an
// error, so the caller gets the existing record untouched.
func (s *userServiceImpl) Register(ctx context.Context, req *dto.RegisterUserRequest) (*model.User, bool, error) {
	if req.Email == "" {
		return nil, false, apperr.New(apperr.KindInvalidArgument, "email is required")
	}

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return existing, true, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, false, fmt.Errorf("look up user by email: %w", err)
	}

	role := model.RoleBuyer
	if req.Role != "" {
		role = model.Role(req.Role)
		if !role.Valid() {
			return nil, false, apperr.Newf(apperr.KindInvalidArgument, "unknown role %q", req.Role)
		}
	}

	user := &model.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Role:      role,
		Status:    model.UserPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Concurrent registration with the same email: surface the winner.
		if apperr.IsConflict(err) {
			existing, ferr := s.userRepo.FindByEmail(ctx, req.Email)
			if ferr != nil {
				return nil, false, ferr
			}
			return existing, true, nil
		}
		return nil, false, fmt.Errorf("create user: %w", err)
	}

	slog.Info("user registered", "email", user.Email, "role", user.Role)
	return user, false, nil
}

func (s *userServiceImpl) List(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userServiceImpl) ChangeRole(ctx context.Context, id string, role string) error {
	newRole := model.Role(role)
	if !newRole.Valid() {
		return apperr.Newf(apperr.KindInvalidArgument, "unknown role %q", role)
	}

	return s.userRepo.UpdateRole(ctx, id, newRole)
}

func (s *userServiceImpl) Approve(ctx context.Context, id string) error {
	return s.transitionStatus(ctx, id, model.UserApproved, "")
}

func (s *userServiceImpl) Suspend(ctx context.Context, id string, reason string) error {
	if reason == "" {
		return apperr.New(apperr.KindInvalidArgument, "suspend reason is required")
	}
	return s.transitionStatus(ctx, id, model.UserSuspended, reason)
}

func (s *userServiceImpl) transitionStatus(ctx context.Context, id string, next model.UserStatus, reason string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !user.Status.CanTransitionTo(next) {
		return apperr.Newf(apperr.KindInvalidArgument, "cannot move user from %s to %s", user.Status, next)
	}

	if err := s.userRepo.UpdateStatus(ctx, id, next, reason); err != nil {
		return fmt.Errorf("update user status: %w", err)
	}

	slog.Info("user status changed", "id", id, "from", user.Status, "to", next)
	return nil
}

func (s *userServiceImpl) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}
