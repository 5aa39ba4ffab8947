package blobstore

import (
	"context"
	"log/slog"

	"outreach/internal/errors"
)

// SchemaGuard runs once at startup, before any repository loads its slot.
// When the persisted schema version is behind the compiled-in target it clears
// every slot except users and rewrites the marker.
//
// Registered accounts must survive every schema migration: losing the users
// slot would lock every worker out of the system. Everything else is safe to
// rebuild from the remote replica or from scratch.
type SchemaGuard struct {
	store  *RecordStore
	target int
	logger *slog.Logger
}

// NewSchemaGuard creates a guard targeting the current compiled-in version.
func NewSchemaGuard(store *RecordStore, logger *slog.Logger) *SchemaGuard {
	return &SchemaGuard{
		store:  store,
		target: CurrentSchemaVersion,
		logger: logger,
	}
}

// Ensure checks the persisted marker and migrates the store area when stale.
func (g *SchemaGuard) Ensure(ctx context.Context) error {
	version, ok := g.store.SchemaVersion(ctx)
	if ok && version == g.target {
		return nil
	}

	g.logger.Info("schema version stale, migrating local store",
		slog.Int("found", version),
		slog.Int("target", g.target),
	)

	// Hold the users payload aside before wiping the area.
	users, hasUsers := g.store.ReadRaw(ctx, SlotUsers)

	if err := g.store.ClearAll(ctx); err != nil {
		return errors.Wrap(err, "clear stale store area")
	}

	if hasUsers {
		if err := g.store.WriteRaw(ctx, SlotUsers, users); err != nil {
			return errors.Wrap(err, "restore users slot after migration")
		}
	}

	if err := g.store.SetSchemaVersion(ctx, g.target); err != nil {
		return errors.Wrap(err, "write schema version marker")
	}

	return nil
}
