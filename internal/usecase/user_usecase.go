// Package usecase defines the application-facing interfaces that sit between
// the delivery layer and the domain.
package usecase

import (
	"context"

	"outreach/internal/domain/entity"
)

// CreateUserInput carries the fields accepted when registering an account.
// ID is optional; a fresh identifier is assigned when it is empty.
type CreateUserInput struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Role        entity.Role         `json:"role"`
	Phone       string              `json:"phone"`
	Village     string              `json:"village"`
	Block       string              `json:"block"`
	District    string              `json:"district"`
	State       string              `json:"state"`
	FacilityID  string              `json:"facility_id"`
	Secret      string              `json:"secret"`
	Performance *entity.Performance `json:"performance,omitempty"`
}

// UpdateUserInput carries the fields accepted when updating an account.
// An empty Secret keeps the stored credential hash unchanged.
type UpdateUserInput struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Role        entity.Role         `json:"role"`
	Phone       string              `json:"phone"`
	Village     string              `json:"village"`
	Block       string              `json:"block"`
	District    string              `json:"district"`
	State       string              `json:"state"`
	FacilityID  string              `json:"facility_id"`
	Secret      string              `json:"secret"`
	Performance *entity.Performance `json:"performance,omitempty"`
}

// UserUsecase defines the interface for account management use cases
type UserUsecase interface {
	// CreateUser registers a new account, hashing its secret and pushing the
	// record to the remote replica in the background.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.UserAccount, error)

	// GetUser retrieves a single account by identifier.
	GetUser(ctx context.Context, id string) (*entity.UserAccount, error)

	// ListUsers returns every account.
	ListUsers(ctx context.Context) []entity.UserAccount

	// ListUsersByRole returns the accounts holding the given role.
	ListUsersByRole(ctx context.Context, role entity.Role) ([]entity.UserAccount, error)

	// ListUsersByFacility returns the accounts attached to the given facility.
	ListUsersByFacility(ctx context.Context, facilityID string) []entity.UserAccount

	// UpdateUser replaces the stored account and pushes the change to the
	// remote replica in the background.
	UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.UserAccount, error)

	// DeleteUser removes the account from the local store.
	DeleteUser(ctx context.Context, id string) error
}
