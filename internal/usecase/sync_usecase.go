package usecase

import (
	"context"

	"outreach/internal/domain/entity"
)

// StorageInfo reports the durable local storage footprint per collection slot.
type StorageInfo struct {
	SlotSizes  map[string]int64 `json:"slot_sizes"`  // Bytes per collection slot.
	TotalBytes int64            `json:"total_bytes"` // Sum across slots.
}

// SyncUsecase is the reconciler between the local store and the remote
// replica. All push operations are fire-and-forget: they dispatch in the
// background and only ever log failures, so local mutations never block on
// the network.
type SyncUsecase interface {
	// Start attaches the live snapshot subscriptions for users and patients.
	// Without a configured replica the store runs purely offline and Start is
	// a no-op.
	Start(ctx context.Context) error

	// Online reports whether the last remote interaction succeeded.
	Online() bool

	// PushUser writes an account to the remote replica in the background.
	PushUser(account entity.UserAccount)

	// PushPatient writes a patient to the remote replica in the background.
	PushPatient(patient entity.PatientRecord)

	// RemovePatient deletes a patient from the remote replica in the background.
	RemovePatient(id string)

	// RefreshFromRemote re-attaches the snapshot subscriptions, forcing a
	// fresh full snapshot of both collections to merge in.
	RefreshFromRemote(ctx context.Context) error

	// RefreshFromLocalStore discards the in-memory collections, re-reads them
	// from durable local storage and notifies change listeners.
	RefreshFromLocalStore(ctx context.Context)

	// GetStorageInfo reports the local storage footprint.
	GetStorageInfo(ctx context.Context) *StorageInfo
}
