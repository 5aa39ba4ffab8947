package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach/internal/domain/entity"
	"outreach/internal/infra/persistence/local"
	"outreach/internal/usecase"
)

func newSyncFixture(t *testing.T) (usecase.SyncUsecase, *fakeReplica, *countingListener) {
	t.Helper()

	ctx := context.Background()
	store := newTestStore(t)
	userRepo := local.NewUserRepository(ctx, store, discardLogger())
	patientRepo := local.NewPatientRepository(ctx, store, discardLogger())

	replica := &fakeReplica{}
	bus := NewChangeBus(discardLogger())
	listener := &countingListener{}
	bus.Register(listener)

	svc := NewSyncService(userRepo, patientRepo, replica, bus, store, discardLogger())

	return svc, replica, listener
}

func TestSyncService_StartSubscribesBothCollections(t *testing.T) {
	t.Parallel()

	svc, replica, _ := newSyncFixture(t)

	require.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, 1, replica.usersSubscribed)
	assert.Equal(t, 1, replica.patientsSubscribed)
	assert.False(t, svc.Online(), "no remote interaction has succeeded yet")
}

func TestSyncService_SnapshotMergesAndNotifiesExactlyOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)
	userRepo := local.NewUserRepository(ctx, store, discardLogger())
	patientRepo := local.NewPatientRepository(ctx, store, discardLogger())

	replica := &fakeReplica{}
	bus := NewChangeBus(discardLogger())
	listener := &countingListener{}
	bus.Register(listener)

	svc := NewSyncService(userRepo, patientRepo, replica, bus, store, discardLogger())
	require.NoError(t, svc.Start(ctx))

	replica.deliverUsers([]entity.UserAccount{
		{ID: "u1", Name: "Asha", Role: entity.RoleCommunityHealthWorker},
	})

	users, patients := listener.counts()
	assert.Equal(t, 1, users, "one snapshot, one notification")
	assert.Zero(t, patients)
	assert.Len(t, userRepo.All(ctx), 1)
	assert.True(t, svc.Online())

	replica.deliverPatients([]entity.PatientRecord{{ID: "p1", Name: "Sita"}})

	users, patients = listener.counts()
	assert.Equal(t, 1, users)
	assert.Equal(t, 1, patients)
	assert.Len(t, patientRepo.All(ctx), 1)
}

func TestSyncService_StartWithoutReplicaRunsOffline(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)
	userRepo := local.NewUserRepository(ctx, store, discardLogger())
	patientRepo := local.NewPatientRepository(ctx, store, discardLogger())

	svc := NewSyncService(userRepo, patientRepo, nil, NewChangeBus(discardLogger()), store, discardLogger())

	require.NoError(t, svc.Start(ctx))
	assert.False(t, svc.Online())
	assert.Error(t, svc.RefreshFromRemote(ctx))

	// Pushes are silent no-ops offline.
	svc.PushUser(entity.UserAccount{ID: "u1"})
	svc.RemovePatient("p1")
}

func TestSyncService_SubscribeFailure(t *testing.T) {
	t.Parallel()

	svc, replica, _ := newSyncFixture(t)
	replica.subscribeErr = errors.New("no network")

	assert.Error(t, svc.Start(context.Background()))
	assert.False(t, svc.Online())
}

func TestSyncService_PushIsFireAndForget(t *testing.T) {
	t.Parallel()

	svc, replica, _ := newSyncFixture(t)

	svc.PushUser(entity.UserAccount{ID: "u1", Name: "Asha"})
	require.Eventually(t, func() bool {
		return replica.putUserCount() == 1
	}, time.Second, 5*time.Millisecond)
	assert.True(t, svc.Online())

	svc.PushPatient(entity.PatientRecord{ID: "p1", Name: "Sita"})
	require.Eventually(t, func() bool {
		return replica.putPatientCount() == 1
	}, time.Second, 5*time.Millisecond)

	svc.RemovePatient("p1")
	require.Eventually(t, func() bool {
		return replica.deletedPatientCount() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestSyncService_PushFailureFlipsConnectivity(t *testing.T) {
	t.Parallel()

	svc, replica, _ := newSyncFixture(t)
	replica.putErr = errors.New("unreachable")

	svc.PushUser(entity.UserAccount{ID: "u1"})

	assert.Eventually(t, func() bool {
		return !svc.Online()
	}, time.Second, 5*time.Millisecond, "failed push must mark the store offline")
}

func TestSyncService_RefreshFromRemoteResubscribes(t *testing.T) {
	t.Parallel()

	svc, replica, _ := newSyncFixture(t)

	require.NoError(t, svc.Start(context.Background()))
	require.NoError(t, svc.RefreshFromRemote(context.Background()))

	assert.Equal(t, 2, replica.usersSubscribed)
	assert.Equal(t, 2, replica.patientsSubscribed)
}

func TestSyncService_SubscriptionOutlivesCallerContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)
	userRepo := local.NewUserRepository(ctx, store, discardLogger())
	patientRepo := local.NewPatientRepository(ctx, store, discardLogger())

	replica := &fakeReplica{}
	svc := NewSyncService(userRepo, patientRepo, replica, NewChangeBus(discardLogger()), store, discardLogger())
	require.NoError(t, svc.Start(ctx))

	// A manual refresh arrives on a request-scoped context that is cancelled
	// as soon as the handler returns.
	reqCtx, cancel := context.WithCancel(context.Background())
	require.NoError(t, svc.RefreshFromRemote(reqCtx))
	cancel()

	usersCtx, patientsCtx := replica.subscribeContexts()
	require.NoError(t, usersCtx.Err(), "users listener died with the request context")
	require.NoError(t, patientsCtx.Err(), "patients listener died with the request context")

	// A snapshot arriving after the request ended still merges and its
	// write-through persists.
	replica.deliverUsers([]entity.UserAccount{
		{ID: "u1", Name: "Asha", Role: entity.RoleCommunityHealthWorker},
	})
	assert.Len(t, userRepo.All(ctx), 1)
	assert.True(t, svc.Online())

	reloaded := local.NewUserRepository(ctx, store, discardLogger())
	assert.Len(t, reloaded.All(ctx), 1)
}

func TestSyncService_RefreshFromLocalStoreReloadsAndNotifies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)
	userRepo := local.NewUserRepository(ctx, store, discardLogger())
	patientRepo := local.NewPatientRepository(ctx, store, discardLogger())

	bus := NewChangeBus(discardLogger())
	listener := &countingListener{}
	bus.Register(listener)

	svc := NewSyncService(userRepo, patientRepo, &fakeReplica{}, bus, store, discardLogger())

	// Another writer persists a user behind the repositories' backs.
	other := local.NewUserRepository(ctx, store, discardLogger())
	require.NoError(t, other.Add(ctx, entity.UserAccount{ID: "u1", Name: "Asha", Role: entity.RoleCommunityHealthWorker}))

	svc.RefreshFromLocalStore(ctx)

	users, patients := listener.counts()
	assert.Equal(t, 1, users)
	assert.Equal(t, 1, patients)
	assert.Len(t, userRepo.All(ctx), 1)
}

func TestSyncService_GetStorageInfo(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)
	userRepo := local.NewUserRepository(ctx, store, discardLogger())
	patientRepo := local.NewPatientRepository(ctx, store, discardLogger())

	require.NoError(t, userRepo.Add(ctx, entity.UserAccount{ID: "u1", Role: entity.RoleCommunityHealthWorker}))

	svc := NewSyncService(userRepo, patientRepo, nil, NewChangeBus(discardLogger()), store, discardLogger())

	info := svc.GetStorageInfo(ctx)
	assert.NotEmpty(t, info.SlotSizes)
	assert.Positive(t, info.TotalBytes)
}
