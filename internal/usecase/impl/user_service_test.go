package impl

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach/internal/domain/entity"
	"outreach/internal/domain/repository"
	"outreach/internal/infra/persistence/local"
	"outreach/internal/usecase"
)

func newUserFixture(t *testing.T) (usecase.UserUsecase, repository.UserRepository, *fakeSync) {
	t.Helper()

	ctx := context.Background()
	userRepo := local.NewUserRepository(ctx, newTestStore(t), discardLogger())
	sync := &fakeSync{}

	return NewUserService(userRepo, fakeHasher{}, sync), userRepo, sync
}

func TestUserService_CreateUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, userRepo, sync := newUserFixture(t)

	user, err := svc.CreateUser(ctx, &usecase.CreateUserInput{
		Name:   "Asha",
		Role:   entity.RoleCommunityHealthWorker,
		Secret: "demo123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID, "an identifier is assigned when none is given")
	assert.Equal(t, "hashed:demo123", user.Secret, "secret is stored hashed")

	stored, err := userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", stored.Name)

	require.Len(t, sync.pushedUsers, 1)
	assert.Equal(t, user.ID, sync.pushedUsers[0].ID)
}

func TestUserService_CreateUserValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, sync := newUserFixture(t)

	_, err := svc.CreateUser(ctx, &usecase.CreateUserInput{
		Name:   "Nobody",
		Role:   entity.Role("astronaut"),
		Secret: "demo123",
	})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid role"))
	assert.Empty(t, sync.pushedUsers, "nothing is pushed on validation failure")
}

func TestUserService_CreateUserDuplicate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, sync := newUserFixture(t)

	input := &usecase.CreateUserInput{
		ID:     "u1",
		Name:   "Asha",
		Role:   entity.RoleCommunityHealthWorker,
		Secret: "demo123",
	}
	_, err := svc.CreateUser(ctx, input)
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, input)
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)
	assert.Len(t, sync.pushedUsers, 1, "failed add must not push")
}

func TestUserService_UpdateUserKeepsSecretWhenEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := newUserFixture(t)

	created, err := svc.CreateUser(ctx, &usecase.CreateUserInput{
		ID:     "u1",
		Name:   "Asha",
		Role:   entity.RoleCommunityHealthWorker,
		Secret: "demo123",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(ctx, &usecase.UpdateUserInput{
		ID:   "u1",
		Name: "Asha Devi",
		Role: entity.RoleCommunityHealthWorker,
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha Devi", updated.Name)
	assert.Equal(t, created.Secret, updated.Secret, "empty input secret keeps the stored hash")

	rehashed, err := svc.UpdateUser(ctx, &usecase.UpdateUserInput{
		ID:     "u1",
		Name:   "Asha Devi",
		Role:   entity.RoleCommunityHealthWorker,
		Secret: "newsecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "hashed:newsecret", rehashed.Secret)
}

func TestUserService_ListFilters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := newUserFixture(t)

	seed := []usecase.CreateUserInput{
		{ID: "u1", Name: "Asha", Role: entity.RoleCommunityHealthWorker, Secret: "x"},
		{ID: "u2", Name: "Dr. Rao", Role: entity.RoleFacilityDoctor, FacilityID: "f1", Secret: "x"},
		{ID: "u3", Name: "Leela", Role: entity.RoleFacilityNurse, FacilityID: "f1", Secret: "x"},
	}
	for i := range seed {
		_, err := svc.CreateUser(ctx, &seed[i])
		require.NoError(t, err)
	}

	assert.Len(t, svc.ListUsers(ctx), 3)

	workers, err := svc.ListUsersByRole(ctx, entity.RoleCommunityHealthWorker)
	require.NoError(t, err)
	assert.Len(t, workers, 1)

	_, err = svc.ListUsersByRole(ctx, entity.Role("astronaut"))
	assert.Error(t, err)

	assert.Len(t, svc.ListUsersByFacility(ctx, "f1"), 2)
}

func TestUserService_DeleteUserIsLocalOnly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, userRepo, sync := newUserFixture(t)

	_, err := svc.CreateUser(ctx, &usecase.CreateUserInput{
		ID: "u1", Name: "Asha", Role: entity.RoleCommunityHealthWorker, Secret: "x",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, "u1"))
	_, err = userRepo.FindByID(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.Len(t, sync.pushedUsers, 1, "delete must not push anything further")

	assert.ErrorIs(t, svc.DeleteUser(ctx, "u1"), repository.ErrUserNotFound)
}
