package usecase

import (
	"context"

	"outreach/internal/domain/entity"
)

// StaffUsecase defines the interface for staff directory use cases.
// The directory is a projection of the users collection plus manually added
// entries that are not tied to any account.
type StaffUsecase interface {
	// ListStaff rebuilds the full directory: one projected entry per user
	// account followed by the manual entries.
	ListStaff(ctx context.Context) []entity.StaffRecord

	// ListStaffByRole filters the directory by role.
	ListStaffByRole(ctx context.Context, role entity.Role) ([]entity.StaffRecord, error)

	// ListStaffByFacility filters the directory by facility.
	ListStaffByFacility(ctx context.Context, facilityID string) []entity.StaffRecord

	// GetStaff retrieves a single directory entry, projected or manual.
	GetStaff(ctx context.Context, id string) (*entity.StaffRecord, error)

	// AddManualEntry inserts a staff entry with no backing account,
	// assigning an identifier when the input carries none.
	AddManualEntry(ctx context.Context, record entity.StaffRecord) (*entity.StaffRecord, error)

	// UpdateManualEntry replaces a manual entry. Projected entries cannot be
	// updated here; they change through the users collection.
	UpdateManualEntry(ctx context.Context, record entity.StaffRecord) (*entity.StaffRecord, error)

	// DeleteManualEntry removes a manual entry.
	DeleteManualEntry(ctx context.Context, id string) error
}
