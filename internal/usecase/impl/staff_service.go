package impl

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"outreach/internal/domain/entity"
	"outreach/internal/domain/repository"
	"outreach/internal/usecase"
)

// staffService serves the staff directory: a projection of the users
// collection plus the manually added entries with no backing account.
type staffService struct {
	userRepo  repository.UserRepository
	staffRepo repository.StaffRepository
}

// NewStaffService creates a new staff service instance
func NewStaffService(
	userRepo repository.UserRepository,
	staffRepo repository.StaffRepository,
) usecase.StaffUsecase {
	return &staffService{
		userRepo:  userRepo,
		staffRepo: staffRepo,
	}
}

// ListStaff rebuilds the full directory from users plus manual entries
func (s *staffService) ListStaff(ctx context.Context) []entity.StaffRecord {
	accounts := s.userRepo.All(ctx)
	manual := s.staffRepo.All(ctx)

	directory := make([]entity.StaffRecord, 0, len(accounts)+len(manual))
	for _, account := range accounts {
		directory = append(directory, entity.StaffFromAccount(account))
	}
	directory = append(directory, manual...)

	return directory
}

// ListStaffByRole filters the directory by role
func (s *staffService) ListStaffByRole(ctx context.Context, role entity.Role) ([]entity.StaffRecord, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	var out []entity.StaffRecord
	for _, record := range s.ListStaff(ctx) {
		if record.Role == role {
			out = append(out, record)
		}
	}

	return out, nil
}

// ListStaffByFacility filters the directory by facility
func (s *staffService) ListStaffByFacility(ctx context.Context, facilityID string) []entity.StaffRecord {
	var out []entity.StaffRecord
	for _, record := range s.ListStaff(ctx) {
		if record.FacilityID == facilityID {
			out = append(out, record)
		}
	}

	return out
}

// GetStaff retrieves a single directory entry, projected or manual
func (s *staffService) GetStaff(ctx context.Context, id string) (*entity.StaffRecord, error) {
	if account, err := s.userRepo.FindByID(ctx, id); err == nil {
		record := entity.StaffFromAccount(*account)

		return &record, nil
	}

	record, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find staff entry: %w", err)
	}

	return record, nil
}

// AddManualEntry inserts a staff entry with no backing account
func (s *staffService) AddManualEntry(ctx context.Context, record entity.StaffRecord) (*entity.StaffRecord, error) {
	if !record.Role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", record.Role)
	}
	if record.Status == "" {
		record.Status = entity.StaffStatusActive
	}
	if !record.Status.IsValid() {
		return nil, fmt.Errorf("invalid staff status: %s", record.Status)
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	// A manual entry must not shadow a projected one.
	if _, err := s.userRepo.FindByID(ctx, record.ID); err == nil {
		return nil, fmt.Errorf("staff id %s belongs to a user account: %w", record.ID, repository.ErrDuplicateStaff)
	}

	if err := s.staffRepo.Add(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to add staff entry: %w", err)
	}

	return &record, nil
}

// UpdateManualEntry replaces a manual entry
func (s *staffService) UpdateManualEntry(ctx context.Context, record entity.StaffRecord) (*entity.StaffRecord, error) {
	if !record.Status.IsValid() {
		return nil, fmt.Errorf("invalid staff status: %s", record.Status)
	}

	if err := s.staffRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update staff entry: %w", err)
	}

	return &record, nil
}

// DeleteManualEntry removes a manual entry
func (s *staffService) DeleteManualEntry(ctx context.Context, id string) error {
	if err := s.staffRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete staff entry: %w", err)
	}

	return nil
}
