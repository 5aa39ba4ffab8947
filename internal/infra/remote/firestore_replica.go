// Package remote implements the remote replica port against Cloud Firestore.
//
// The replica is an opaque shared backend: each collection is a Firestore
// collection keyed by record identifier, and the snapshot listener delivers
// the full collection contents on every remote change.
package remote

import (
	"context"
	"log/slog"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"outreach/config"
	"outreach/internal/domain/entity"
	"outreach/internal/domain/service"
	"outreach/internal/errors"
)

type firestoreReplica struct {
	client *firestore.Client
	logger *slog.Logger

	// One live listener per collection. Re-subscribing cancels the previous
	// listener first so a remote event never triggers duplicate merges.
	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

// NewFirestoreReplica connects to the Firebase project configured as the
// shared replica backend.
func NewFirestoreReplica(ctx context.Context, cfg *config.RemoteConfig, logger *slog.Logger) (service.RemoteReplica, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "create firestore client")
	}

	logger.Info("remote replica connected", slog.String("projectId", cfg.ProjectID))

	return &firestoreReplica{
		client:  client,
		logger:  logger,
		cancels: make(map[string]context.CancelFunc),
	}, nil
}

func (r *firestoreReplica) SubscribeUsers(ctx context.Context, onSnapshot func([]entity.UserAccount), onError func(error)) error {
	return subscribe(r, ctx, service.CollectionUsers, onSnapshot, onError)
}

func (r *firestoreReplica) SubscribePatients(ctx context.Context, onSnapshot func([]entity.PatientRecord), onError func(error)) error {
	return subscribe(r, ctx, service.CollectionPatients, onSnapshot, onError)
}

func (r *firestoreReplica) PutUser(ctx context.Context, account entity.UserAccount) error {
	if _, err := r.client.Collection(service.CollectionUsers).Doc(account.ID).Set(ctx, account); err != nil {
		return errors.Wrapf(err, "put user %s", account.ID)
	}

	return nil
}

func (r *firestoreReplica) PutPatient(ctx context.Context, patient entity.PatientRecord) error {
	if _, err := r.client.Collection(service.CollectionPatients).Doc(patient.ID).Set(ctx, patient); err != nil {
		return errors.Wrapf(err, "put patient %s", patient.ID)
	}

	return nil
}

func (r *firestoreReplica) DeletePatient(ctx context.Context, id string) error {
	if _, err := r.client.Collection(service.CollectionPatients).Doc(id).Delete(ctx); err != nil {
		return errors.Wrapf(err, "delete patient %s", id)
	}

	return nil
}

// Close cancels every live listener and releases the client.
func (r *firestoreReplica) Close() error {
	r.mu.Lock()
	for name, cancel := range r.cancels {
		cancel()
		delete(r.cancels, name)
	}
	r.mu.Unlock()

	return errors.WithStack(r.client.Close())
}

// subscribe attaches the single live listener for a collection, detaching any
// previous one, and pumps full snapshots to onSnapshot until the context or a
// stream error ends the feed.
func subscribe[T any](r *firestoreReplica, ctx context.Context, collection string, onSnapshot func([]T), onError func(error)) error {
	r.mu.Lock()
	if cancel, ok := r.cancels[collection]; ok {
		cancel()
	}
	subCtx, cancel := context.WithCancel(ctx)
	r.cancels[collection] = cancel
	r.mu.Unlock()

	iter := r.client.Collection(collection).Snapshots(subCtx)

	go func() {
		defer iter.Stop()
		for {
			snap, err := iter.Next()
			if err != nil {
				if status.Code(err) == codes.Canceled {
					return
				}
				r.logger.Warn("remote snapshot feed ended",
					slog.String("collection", collection),
					slog.Any("error", err),
				)
				onError(err)

				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				r.logger.Warn("remote snapshot read failed",
					slog.String("collection", collection),
					slog.Any("error", err),
				)
				onError(err)

				continue
			}

			items := make([]T, 0, len(docs))
			for _, doc := range docs {
				var item T
				if err := doc.DataTo(&item); err != nil {
					// Skip records the local schema cannot decode.
					r.logger.Warn("remote record undecodable",
						slog.String("collection", collection),
						slog.String("id", doc.Ref.ID),
						slog.Any("error", err),
					)

					continue
				}
				items = append(items, item)
			}

			onSnapshot(items)
		}
	}()

	return nil
}
