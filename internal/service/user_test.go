package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textila-api/internal/apperr"
	"textila-api/internal/dto"
	"textila-api/internal/model"
	"textila-api/internal/repository"
)

func newUserService(t *testing.T) (UserService, repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)
	return NewUserService(repo), repo
}

func TestRegisterAssignsDefaults(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	user, existed, err := svc.Register(ctx, &dto.RegisterUserRequest{
		Name:  "Rahim",
		Email: "rahim@example.com",
	})
	require.NoError(t, err)
	assert.False(t, existed)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, model.RoleBuyer, user.Role)
	assert.Equal(t, model.UserPending, user.Status)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegisterDuplicateEmailIsNotice(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	first, existed, err := svc.Register(ctx, &dto.RegisterUserRequest{Email: "dup@example.com"})
	require.NoError(t, err)
	require.False(t, existed)

	second, existed, err := svc.Register(ctx, &dto.RegisterUserRequest{Email: "dup@example.com", Name: "Someone Else"})
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, first.ID, second.ID)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _ := newUserService(t)

	_, _, err := svc.Register(context.Background(), &dto.RegisterUserRequest{
		Email: "x@example.com",
		Role:  "superuser",
	})
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}

func TestUserStatusLifecycle(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, &dto.RegisterUserRequest{Email: "flow@example.com"})
	require.NoError(t, err)

	// pending -> approved
	require.NoError(t, svc.Approve(ctx, user.ID))
	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.UserApproved, got.Status)

	// approving an approved user is rejected
	err = svc.Approve(ctx, user.ID)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	// approved -> suspended, reason required
	err = svc.Suspend(ctx, user.ID, "")
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	require.NoError(t, svc.Suspend(ctx, user.ID, "chargeback abuse"))
	got, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.UserSuspended, got.Status)
	assert.Equal(t, "chargeback abuse", got.SuspendReason)

	// suspended -> approved clears the reason
	require.NoError(t, svc.Approve(ctx, user.ID))
	got, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.UserApproved, got.Status)
	assert.Empty(t, got.SuspendReason)
}

func TestChangeRole(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, &dto.RegisterUserRequest{Email: "role@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.ChangeRole(ctx, user.ID, "manager"))
	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleManager, got.Role)

	err = svc.ChangeRole(ctx, user.ID, "wizard")
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	err = svc.ChangeRole(ctx, "no-such-id", "admin")
	assert.True(t, apperr.IsNotFound(err))
}

func TestGetByEmailNotFound(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.GetByEmail(context.Background(), "ghost@example.com")
	assert.True(t, apperr.IsNotFound(err))
}
