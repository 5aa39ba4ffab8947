package repository

import (
	"context"
	"errors"

	"outreach/internal/domain/entity"
)

// ErrStaffNotFound is returned when no staff entry matches the identifier.
var ErrStaffNotFound = errors.New("staff entry not found")

// ErrDuplicateStaff is returned when a staff entry with the same identifier
// already exists.
var ErrDuplicateStaff = errors.New("staff entry id already registered")

// StaffRepository stores only manually added staff entries that are not tied
// to any user account. The full staff directory is a projection of the users
// collection plus these entries, rebuilt on demand by the staff service.
type StaffRepository interface {
	// All returns every manual entry in collection order.
	All(ctx context.Context) []entity.StaffRecord

	// FindByID retrieves a single manual entry by identifier.
	FindByID(ctx context.Context, id string) (*entity.StaffRecord, error)

	// Add inserts a new manual entry, rejecting duplicate identifiers with
	// ErrDuplicateStaff.
	Add(ctx context.Context, record entity.StaffRecord) error

	// Update replaces the stored entry matching the identifier.
	Update(ctx context.Context, record entity.StaffRecord) error

	// Delete removes the entry with the given identifier.
	Delete(ctx context.Context, id string) error
}
