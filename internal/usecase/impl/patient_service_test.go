package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach/internal/domain/entity"
	"outreach/internal/domain/repository"
	"outreach/internal/infra/persistence/local"
	"outreach/internal/usecase"
)

func newPatientFixture(t *testing.T) (usecase.PatientUsecase, repository.PatientRepository, *fakeSync) {
	t.Helper()

	ctx := context.Background()
	patientRepo := local.NewPatientRepository(ctx, newTestStore(t), discardLogger())
	sync := &fakeSync{}

	return NewPatientService(patientRepo, sync), patientRepo, sync
}

func TestPatientService_RegisterPatient(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, patientRepo, sync := newPatientFixture(t)

	patient, err := svc.RegisterPatient(ctx, &usecase.RegisterPatientInput{
		Name:            "Sita",
		Age:             24,
		PregnancyStatus: entity.PregnancyStatusPregnant,
		WorkerID:        "w1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, patient.ID)
	assert.NotEmpty(t, patient.RegistrationDate, "registration date defaults to today")

	stored, err := patientRepo.FindByID(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sita", stored.Name)

	require.Len(t, sync.pushedPatients, 1)
	assert.Equal(t, patient.ID, sync.pushedPatients[0].ID)
}

func TestPatientService_RegisterPatientInvalidStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, sync := newPatientFixture(t)

	_, err := svc.RegisterPatient(ctx, &usecase.RegisterPatientInput{
		Name:            "Sita",
		PregnancyStatus: entity.PregnancyStatus("unsure"),
		WorkerID:        "w1",
	})
	assert.Error(t, err)
	assert.Empty(t, sync.pushedPatients)
}

func TestPatientService_RecordVisit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, patientRepo, sync := newPatientFixture(t)

	created, err := svc.RegisterPatient(ctx, &usecase.RegisterPatientInput{
		ID: "p1", Name: "Sita", WorkerID: "w1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RecordVisit(ctx, created.ID, "2026-08-15"))

	stored, err := patientRepo.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-15", stored.LastVisit)
	assert.Len(t, sync.pushedPatients, 2, "visit is pushed like any other update")
}

func TestPatientService_ReferPatient(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, patientRepo, _ := newPatientFixture(t)

	_, err := svc.RegisterPatient(ctx, &usecase.RegisterPatientInput{
		ID: "p1", Name: "Sita", WorkerID: "w1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ReferPatient(ctx, "p1", "d1", "w1"))

	stored, err := patientRepo.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "d1", stored.DoctorID)
	require.NotNil(t, stored.Referral)
	assert.True(t, stored.Referral.Referred)
	assert.Equal(t, "pending", stored.Referral.Status)
	assert.Equal(t, "w1", stored.Referral.WorkerID)
	assert.NotEmpty(t, stored.Referral.Date)

	assert.Error(t, svc.ReferPatient(ctx, "missing", "d1", "w1"))
}

func TestPatientService_DeletePushesRemoteRemoval(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, sync := newPatientFixture(t)

	_, err := svc.RegisterPatient(ctx, &usecase.RegisterPatientInput{
		ID: "p1", Name: "Sita", WorkerID: "w1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePatient(ctx, "p1"))
	assert.Equal(t, []string{"p1"}, sync.removedPatients)

	err = svc.DeletePatient(ctx, "p1")
	assert.ErrorIs(t, err, repository.ErrPatientNotFound)
	assert.Len(t, sync.removedPatients, 1, "failed delete must not push")
}
