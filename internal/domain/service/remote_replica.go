// Package service defines interfaces for core, stateless domain logic and the
// ports the store requires from external collaborators.
package service

import (
	"context"

	"outreach/internal/domain/entity"
)

// RemoteReplica is the contract the store requires from the shared backend
// holding the live copy of users and patients. The replica delivers a full
// replacement snapshot of a collection on every remote change, not a delta.
//
// Subscribe methods register exactly one live listener per collection: a
// second call for the same collection detaches the previous listener before
// attaching the new one, so a remote event never triggers duplicate merges.
// Put and Delete are fire-and-forget from the caller's point of view: the
// reconciler dispatches them asynchronously and only logs failures.
type RemoteReplica interface {
	// SubscribeUsers starts the live user snapshot feed.
	SubscribeUsers(ctx context.Context, onSnapshot func([]entity.UserAccount), onError func(error)) error

	// SubscribePatients starts the live patient snapshot feed.
	SubscribePatients(ctx context.Context, onSnapshot func([]entity.PatientRecord), onError func(error)) error

	// PutUser writes an account to the replica keyed by its identifier.
	PutUser(ctx context.Context, account entity.UserAccount) error

	// PutPatient writes a patient to the replica keyed by its identifier.
	PutPatient(ctx context.Context, patient entity.PatientRecord) error

	// DeletePatient removes a patient from the replica.
	DeletePatient(ctx context.Context, id string) error

	// Close detaches all live listeners and releases the client.
	Close() error
}
