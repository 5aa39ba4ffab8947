package impl

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"outreach/internal/domain/entity"
	"outreach/internal/domain/repository"
	"outreach/internal/domain/service"
	"outreach/internal/usecase"
)

type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	sync     usecase.SyncUsecase
}

// NewUserService creates a new user service instance
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	sync usecase.SyncUsecase,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		sync:     sync,
	}
}

// CreateUser registers a new account and pushes it to the remote replica
func (s *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.UserAccount, error) {
	if !input.Role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", input.Role)
	}

	hash, err := s.hasher.Hash(input.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to hash secret: %w", err)
	}

	account := entity.UserAccount{
		ID:         input.ID,
		Name:       input.Name,
		Role:       input.Role,
		Phone:      input.Phone,
		Village:    input.Village,
		Block:      input.Block,
		District:   input.District,
		State:      input.State,
		FacilityID: input.FacilityID,
		Secret:     hash,
	}
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	if input.Performance != nil {
		perf := *input.Performance
		account.Performance = &perf
	}

	if err := s.userRepo.Add(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to add user: %w", err)
	}

	s.sync.PushUser(account)

	result := account.Clone()

	return &result, nil
}

// GetUser retrieves a single account by identifier
func (s *userService) GetUser(ctx context.Context, id string) (*entity.UserAccount, error) {
	account, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return account, nil
}

// ListUsers returns every account
func (s *userService) ListUsers(ctx context.Context) []entity.UserAccount {
	return s.userRepo.All(ctx)
}

// ListUsersByRole returns the accounts holding the given role
func (s *userService) ListUsersByRole(ctx context.Context, role entity.Role) ([]entity.UserAccount, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return s.userRepo.FindByRole(ctx, role), nil
}

// ListUsersByFacility returns the accounts attached to the given facility
func (s *userService) ListUsersByFacility(ctx context.Context, facilityID string) []entity.UserAccount {
	return s.userRepo.FindByFacility(ctx, facilityID)
}

// UpdateUser replaces the stored account and pushes the change to the replica.
// An empty input secret keeps the stored credential hash.
func (s *userService) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) (*entity.UserAccount, error) {
	if !input.Role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", input.Role)
	}

	existing, err := s.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	secret := existing.Secret
	if input.Secret != "" {
		secret, err = s.hasher.Hash(input.Secret)
		if err != nil {
			return nil, fmt.Errorf("failed to hash secret: %w", err)
		}
	}

	account := entity.UserAccount{
		ID:         input.ID,
		Name:       input.Name,
		Role:       input.Role,
		Phone:      input.Phone,
		Village:    input.Village,
		Block:      input.Block,
		District:   input.District,
		State:      input.State,
		FacilityID: input.FacilityID,
		Secret:     secret,
	}
	if input.Performance != nil {
		perf := *input.Performance
		account.Performance = &perf
	}

	if err := s.userRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.sync.PushUser(account)

	result := account.Clone()

	return &result, nil
}

// DeleteUser removes the account from the local store. Accounts are never
// deleted from the remote replica; other devices keep their copies.
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
