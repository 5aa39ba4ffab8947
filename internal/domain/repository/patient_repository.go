package repository

import (
	"context"
	"errors"

	"outreach/internal/domain/entity"
)

// ErrPatientNotFound is returned when no patient matches the given identifier.
var ErrPatientNotFound = errors.New("patient not found")

// ErrDuplicatePatient is returned when a patient with the same identifier
// already exists.
var ErrDuplicatePatient = errors.New("patient id already registered")

// PatientRepository is the authoritative local store for patient records.
// All reads return defensive copies; filtered queries are linear scans that
// preserve collection order.
type PatientRepository interface {
	// All returns every patient in collection order.
	All(ctx context.Context) []entity.PatientRecord

	// FindByID retrieves a single patient by identifier.
	FindByID(ctx context.Context, id string) (*entity.PatientRecord, error)

	// FindByWorker returns the patients owned by the given community health worker.
	FindByWorker(ctx context.Context, workerID string) []entity.PatientRecord

	// FindByDoctor returns the patients assigned to the given doctor.
	FindByDoctor(ctx context.Context, doctorID string) []entity.PatientRecord

	// FindByFacility returns the patients registered under the given facility.
	FindByFacility(ctx context.Context, facilityID string) []entity.PatientRecord

	// FindHighRisk returns the patients carrying the high-risk flag.
	FindHighRisk(ctx context.Context) []entity.PatientRecord

	// FindByPregnancyStatus returns the patients in the given pregnancy state.
	FindByPregnancyStatus(ctx context.Context, status entity.PregnancyStatus) []entity.PatientRecord

	// Add inserts a new patient, rejecting duplicate identifiers with
	// ErrDuplicatePatient.
	Add(ctx context.Context, patient entity.PatientRecord) error

	// Update replaces the stored patient matching the identifier.
	Update(ctx context.Context, patient entity.PatientRecord) error

	// Delete removes the patient with the given identifier.
	Delete(ctx context.Context, id string) error

	// Merge reconciles a remote snapshot into the collection by identifier,
	// remote-wins, inside the collection's mutation lock.
	Merge(ctx context.Context, snapshot []entity.PatientRecord)

	// Reload discards the in-memory collection and re-reads it from local
	// storage.
	Reload(ctx context.Context)
}
