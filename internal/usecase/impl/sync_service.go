package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"outreach/internal/domain/entity"
	"outreach/internal/domain/repository"
	"outreach/internal/domain/service"
	"outreach/internal/infra/persistence/blobstore"
	"outreach/internal/usecase"
)

// pushTimeout bounds each background replica write.
const pushTimeout = 30 * time.Second

// syncService reconciles the local store with the remote replica.
//
// Inbound: snapshot subscriptions merge full replacement snapshots into the
// local collections and notify change listeners, once per delivered snapshot.
// Outbound: Put/Delete calls run on their own goroutines against a background
// context; failures flip the connectivity flag and are logged, never returned.
type syncService struct {
	userRepo    repository.UserRepository
	patientRepo repository.PatientRepository
	replica     service.RemoteReplica
	notifier    service.ChangeNotifier
	store       *blobstore.RecordStore
	logger      *slog.Logger
	online      atomic.Bool
}

// NewSyncService creates the reconciler. A nil replica means the store runs
// purely offline; every push becomes a logged no-op.
func NewSyncService(
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	replica service.RemoteReplica,
	notifier service.ChangeNotifier,
	store *blobstore.RecordStore,
	logger *slog.Logger,
) usecase.SyncUsecase {
	return &syncService{
		userRepo:    userRepo,
		patientRepo: patientRepo,
		replica:     replica,
		notifier:    notifier,
		store:       store,
		logger:      logger,
	}
}

// Start attaches the live snapshot subscriptions for users and patients
func (s *syncService) Start(ctx context.Context) error {
	if s.replica == nil {
		s.logger.Info("Remote replica not configured, store runs offline")

		return nil
	}

	return s.subscribe(ctx)
}

func (s *syncService) subscribe(ctx context.Context) error {
	// Subscriptions outlive the triggering call: a manual refresh arrives on
	// a request-scoped context that is cancelled once the handler returns,
	// and the listeners it attaches have to keep streaming after that.
	ctx = context.WithoutCancel(ctx)

	err := s.replica.SubscribeUsers(ctx,
		func(snapshot []entity.UserAccount) {
			s.userRepo.Merge(ctx, snapshot)
			s.online.Store(true)
			s.notifier.NotifyUsersChanged()
		},
		s.onStreamError(service.CollectionUsers),
	)
	if err != nil {
		s.online.Store(false)

		return fmt.Errorf("failed to subscribe users: %w", err)
	}

	err = s.replica.SubscribePatients(ctx,
		func(snapshot []entity.PatientRecord) {
			s.patientRepo.Merge(ctx, snapshot)
			s.online.Store(true)
			s.notifier.NotifyPatientsChanged()
		},
		s.onStreamError(service.CollectionPatients),
	)
	if err != nil {
		s.online.Store(false)

		return fmt.Errorf("failed to subscribe patients: %w", err)
	}

	return nil
}

func (s *syncService) onStreamError(collection string) func(error) {
	return func(err error) {
		s.online.Store(false)
		s.logger.Warn("Remote snapshot stream error",
			slog.String("collection", collection),
			slog.Any("error", err),
		)
	}
}

// Online reports whether the last remote interaction succeeded
func (s *syncService) Online() bool {
	return s.online.Load()
}

// PushUser writes an account to the remote replica in the background
func (s *syncService) PushUser(account entity.UserAccount) {
	s.push("user", account.ID, func(ctx context.Context) error {
		return s.replica.PutUser(ctx, account)
	})
}

// PushPatient writes a patient to the remote replica in the background
func (s *syncService) PushPatient(patient entity.PatientRecord) {
	s.push("patient", patient.ID, func(ctx context.Context) error {
		return s.replica.PutPatient(ctx, patient)
	})
}

// RemovePatient deletes a patient from the remote replica in the background
func (s *syncService) RemovePatient(id string) {
	s.push("patient delete", id, func(ctx context.Context) error {
		return s.replica.DeletePatient(ctx, id)
	})
}

// push runs one replica write on its own goroutine. The local mutation has
// already committed; here we only record whether the replica is reachable.
func (s *syncService) push(kind, id string, op func(context.Context) error) {
	if s.replica == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()

		if err := op(ctx); err != nil {
			s.online.Store(false)
			s.logger.Warn("Remote push failed, record kept locally",
				slog.String("kind", kind),
				slog.String("id", id),
				slog.Any("error", err),
			)

			return
		}
		s.online.Store(true)
	}()
}

// RefreshFromRemote re-attaches the snapshot subscriptions, forcing a fresh
// full snapshot of both collections to merge in
func (s *syncService) RefreshFromRemote(ctx context.Context) error {
	if s.replica == nil {
		return fmt.Errorf("remote replica not configured")
	}

	return s.subscribe(ctx)
}

// RefreshFromLocalStore re-reads both collections from durable local storage
// and notifies change listeners
func (s *syncService) RefreshFromLocalStore(ctx context.Context) {
	s.userRepo.Reload(ctx)
	s.patientRepo.Reload(ctx)
	s.notifier.NotifyUsersChanged()
	s.notifier.NotifyPatientsChanged()
}

// GetStorageInfo reports the local storage footprint per collection slot
func (s *syncService) GetStorageInfo(ctx context.Context) *usecase.StorageInfo {
	sizes := s.store.SlotSizes(ctx)

	info := &usecase.StorageInfo{SlotSizes: sizes}
	for _, size := range sizes {
		info.TotalBytes += size
	}

	return info
}
