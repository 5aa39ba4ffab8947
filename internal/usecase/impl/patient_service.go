package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"outreach/internal/domain/entity"
	"outreach/internal/domain/repository"
	"outreach/internal/usecase"
)

// dateLayout is the ISO 8601 date format used across patient records.
const dateLayout = "2006-01-02"

type patientService struct {
	patientRepo repository.PatientRepository
	sync        usecase.SyncUsecase
}

// NewPatientService creates a new patient service instance
func NewPatientService(
	patientRepo repository.PatientRepository,
	sync usecase.SyncUsecase,
) usecase.PatientUsecase {
	return &patientService{
		patientRepo: patientRepo,
		sync:        sync,
	}
}

// RegisterPatient creates a new patient record and pushes it to the replica
func (s *patientService) RegisterPatient(ctx context.Context, input *usecase.RegisterPatientInput) (*entity.PatientRecord, error) {
	if input.PregnancyStatus != "" && !input.PregnancyStatus.IsValid() {
		return nil, fmt.Errorf("invalid pregnancy status: %s", input.PregnancyStatus)
	}

	patient := entity.PatientRecord{
		ID:               input.ID,
		Name:             input.Name,
		HusbandName:      input.HusbandName,
		Age:              input.Age,
		Phone:            input.Phone,
		Village:          input.Village,
		Block:            input.Block,
		District:         input.District,
		BloodGroup:       input.BloodGroup,
		LMPDate:          input.LMPDate,
		EDDDate:          input.EDDDate,
		PregnancyStatus:  input.PregnancyStatus,
		RiskFactors:      input.RiskFactors,
		HighRisk:         input.HighRisk,
		WorkerID:         input.WorkerID,
		FacilityID:       input.FacilityID,
		DoctorID:         input.DoctorID,
		RegistrationDate: input.RegistrationDate,
	}
	if patient.ID == "" {
		patient.ID = uuid.NewString()
	}
	if patient.RegistrationDate == "" {
		patient.RegistrationDate = time.Now().Format(dateLayout)
	}

	if err := s.patientRepo.Add(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to add patient: %w", err)
	}

	s.sync.PushPatient(patient)

	result := patient.Clone()

	return &result, nil
}

// GetPatient retrieves a single patient by identifier
func (s *patientService) GetPatient(ctx context.Context, id string) (*entity.PatientRecord, error) {
	patient, err := s.patientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find patient: %w", err)
	}

	return patient, nil
}

// ListPatients returns every patient
func (s *patientService) ListPatients(ctx context.Context) []entity.PatientRecord {
	return s.patientRepo.All(ctx)
}

// ListPatientsByWorker returns the patients owned by the given worker
func (s *patientService) ListPatientsByWorker(ctx context.Context, workerID string) []entity.PatientRecord {
	return s.patientRepo.FindByWorker(ctx, workerID)
}

// ListPatientsByDoctor returns the patients assigned to the given doctor
func (s *patientService) ListPatientsByDoctor(ctx context.Context, doctorID string) []entity.PatientRecord {
	return s.patientRepo.FindByDoctor(ctx, doctorID)
}

// ListPatientsByFacility returns the patients registered under the facility
func (s *patientService) ListPatientsByFacility(ctx context.Context, facilityID string) []entity.PatientRecord {
	return s.patientRepo.FindByFacility(ctx, facilityID)
}

// ListHighRiskPatients returns the patients carrying the high-risk flag
func (s *patientService) ListHighRiskPatients(ctx context.Context) []entity.PatientRecord {
	return s.patientRepo.FindHighRisk(ctx)
}

// ListPatientsByPregnancyStatus returns the patients in the given state
func (s *patientService) ListPatientsByPregnancyStatus(ctx context.Context, status entity.PregnancyStatus) ([]entity.PatientRecord, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid pregnancy status: %s", status)
	}

	return s.patientRepo.FindByPregnancyStatus(ctx, status), nil
}

// UpdatePatient replaces the stored record and pushes the change to the replica
func (s *patientService) UpdatePatient(ctx context.Context, patient entity.PatientRecord) (*entity.PatientRecord, error) {
	if patient.PregnancyStatus != "" && !patient.PregnancyStatus.IsValid() {
		return nil, fmt.Errorf("invalid pregnancy status: %s", patient.PregnancyStatus)
	}

	if err := s.patientRepo.Update(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	s.sync.PushPatient(patient)

	result := patient.Clone()

	return &result, nil
}

// RecordVisit stamps the most recent home-visit date on a patient
func (s *patientService) RecordVisit(ctx context.Context, id, visitDate string) error {
	patient, err := s.patientRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find patient: %w", err)
	}

	if visitDate == "" {
		visitDate = time.Now().Format(dateLayout)
	}
	patient.LastVisit = visitDate

	if err := s.patientRepo.Update(ctx, *patient); err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}

	s.sync.PushPatient(*patient)

	return nil
}

// ReferPatient raises a referral, assigning the doctor and marking it pending
func (s *patientService) ReferPatient(ctx context.Context, patientID, doctorID, workerID string) error {
	patient, err := s.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		return fmt.Errorf("failed to find patient: %w", err)
	}

	patient.DoctorID = doctorID
	patient.Referral = &entity.Referral{
		Referred: true,
		DoctorID: doctorID,
		WorkerID: workerID,
		Date:     time.Now().Format(dateLayout),
		Status:   "pending",
	}

	if err := s.patientRepo.Update(ctx, *patient); err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}

	s.sync.PushPatient(*patient)

	return nil
}

// DeletePatient removes the record locally and from the remote replica
func (s *patientService) DeletePatient(ctx context.Context, id string) error {
	if err := s.patientRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	s.sync.RemovePatient(id)

	return nil
}
