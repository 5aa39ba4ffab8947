package local

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach/internal/domain/entity"
	"outreach/internal/domain/repository"
)

func patient(id, name string) entity.PatientRecord {
	return entity.PatientRecord{
		ID:              id,
		Name:            name,
		PregnancyStatus: entity.PregnancyStatusPregnant,
	}
}

func TestPatientRepository_CRUD(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPatientRepository(ctx, newStore(t), discardLogger())

	require.NoError(t, repo.Add(ctx, patient("p1", "Sita")))
	assert.ErrorIs(t, repo.Add(ctx, patient("p1", "Other")), repository.ErrDuplicatePatient)

	found, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Sita", found.Name)

	found.Name = "Sita Kumari"
	require.NoError(t, repo.Update(ctx, *found))

	again, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Sita Kumari", again.Name)

	require.NoError(t, repo.Delete(ctx, "p1"))
	_, err = repo.FindByID(ctx, "p1")
	assert.ErrorIs(t, err, repository.ErrPatientNotFound)
}

func TestPatientRepository_Filters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPatientRepository(ctx, newStore(t), discardLogger())

	p1 := patient("p1", "Sita")
	p1.WorkerID = "w1"
	p1.FacilityID = "f1"
	p1.HighRisk = true

	p2 := patient("p2", "Gita")
	p2.WorkerID = "w1"
	p2.DoctorID = "d1"
	p2.PregnancyStatus = entity.PregnancyStatusDelivered

	p3 := patient("p3", "Rita")
	p3.WorkerID = "w2"
	p3.FacilityID = "f1"

	require.NoError(t, repo.Add(ctx, p1))
	require.NoError(t, repo.Add(ctx, p2))
	require.NoError(t, repo.Add(ctx, p3))

	byWorker := repo.FindByWorker(ctx, "w1")
	require.Len(t, byWorker, 2)
	assert.Equal(t, "p1", byWorker[0].ID, "collection order preserved")

	assert.Len(t, repo.FindByDoctor(ctx, "d1"), 1)
	assert.Len(t, repo.FindByFacility(ctx, "f1"), 2)

	highRisk := repo.FindHighRisk(ctx)
	require.Len(t, highRisk, 1)
	assert.Equal(t, "p1", highRisk[0].ID)

	pregnant := repo.FindByPregnancyStatus(ctx, entity.PregnancyStatusPregnant)
	assert.Len(t, pregnant, 2)
}

func TestPatientRepository_MergeOverwritesLocalEdits(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPatientRepository(ctx, newStore(t), discardLogger())

	local := patient("p1", "Sita")
	local.HighRisk = true
	require.NoError(t, repo.Add(ctx, local))

	// The remote copy does not carry the local high-risk flag; remote wins.
	remote := patient("p1", "Sita")
	remote.HighRisk = false
	repo.Merge(ctx, []entity.PatientRecord{remote})

	found, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, found.HighRisk)
}

func TestPatientRepository_MergePersistsToStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newStore(t)
	repo := NewPatientRepository(ctx, store, discardLogger())

	repo.Merge(ctx, []entity.PatientRecord{patient("p1", "Sita"), patient("p2", "Gita")})

	reopened := NewPatientRepository(ctx, store, discardLogger())
	assert.Len(t, reopened.All(ctx), 2)
}

func TestPatientRepository_DefensiveCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPatientRepository(ctx, newStore(t), discardLogger())

	p := patient("p1", "Sita")
	p.RiskFactors = []string{"anemia"}
	p.Referral = &entity.Referral{Referred: true, Status: "pending"}
	require.NoError(t, repo.Add(ctx, p))

	found, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	found.RiskFactors[0] = "mutated"
	found.Referral.Status = "mutated"

	again, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "anemia", again.RiskFactors[0])
	assert.Equal(t, "pending", again.Referral.Status)
}
