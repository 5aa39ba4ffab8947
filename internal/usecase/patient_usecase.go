package usecase

import (
	"context"

	"outreach/internal/domain/entity"
)

// RegisterPatientInput carries the fields accepted when registering a patient.
// ID is optional; a fresh identifier is assigned when it is empty.
// RegistrationDate defaults to today when empty.
type RegisterPatientInput struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	HusbandName      string                 `json:"husband_name"`
	Age              int                    `json:"age"`
	Phone            string                 `json:"phone"`
	Village          string                 `json:"village"`
	Block            string                 `json:"block"`
	District         string                 `json:"district"`
	BloodGroup       string                 `json:"blood_group"`
	LMPDate          string                 `json:"lmp_date"`
	EDDDate          string                 `json:"edd_date"`
	PregnancyStatus  entity.PregnancyStatus `json:"pregnancy_status"`
	RiskFactors      []string               `json:"risk_factors"`
	HighRisk         bool                   `json:"high_risk"`
	WorkerID         string                 `json:"worker_id"`
	FacilityID       string                 `json:"facility_id"`
	DoctorID         string                 `json:"doctor_id"`
	RegistrationDate string                 `json:"registration_date"`
}

// PatientUsecase defines the interface for patient management use cases
type PatientUsecase interface {
	// RegisterPatient creates a new patient record and pushes it to the
	// remote replica in the background.
	RegisterPatient(ctx context.Context, input *RegisterPatientInput) (*entity.PatientRecord, error)

	// GetPatient retrieves a single patient by identifier.
	GetPatient(ctx context.Context, id string) (*entity.PatientRecord, error)

	// ListPatients returns every patient.
	ListPatients(ctx context.Context) []entity.PatientRecord

	// ListPatientsByWorker returns the patients owned by the given worker.
	ListPatientsByWorker(ctx context.Context, workerID string) []entity.PatientRecord

	// ListPatientsByDoctor returns the patients assigned to the given doctor.
	ListPatientsByDoctor(ctx context.Context, doctorID string) []entity.PatientRecord

	// ListPatientsByFacility returns the patients registered under the given facility.
	ListPatientsByFacility(ctx context.Context, facilityID string) []entity.PatientRecord

	// ListHighRiskPatients returns the patients carrying the high-risk flag.
	ListHighRiskPatients(ctx context.Context) []entity.PatientRecord

	// ListPatientsByPregnancyStatus returns the patients in the given pregnancy state.
	ListPatientsByPregnancyStatus(ctx context.Context, status entity.PregnancyStatus) ([]entity.PatientRecord, error)

	// UpdatePatient replaces the stored record and pushes the change to the
	// remote replica in the background.
	UpdatePatient(ctx context.Context, patient entity.PatientRecord) (*entity.PatientRecord, error)

	// RecordVisit stamps the most recent home-visit date on a patient.
	RecordVisit(ctx context.Context, id, visitDate string) error

	// ReferPatient raises a referral on the patient, assigning the doctor and
	// marking the referral pending.
	ReferPatient(ctx context.Context, patientID, doctorID, workerID string) error

	// DeletePatient removes the record locally and from the remote replica.
	DeletePatient(ctx context.Context, id string) error
}
