// Package blobstore implements the serialized record store: typed collections
// encoded as JSON into named slots of a durable gocloud blob bucket.
//
// Persistence is best-effort within a session. A missing or unparsable slot
// loads as an empty collection, and a failed save leaves the in-memory copy as
// the source of truth until the next successful write-through.
package blobstore

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"

	"gocloud.dev/blob"
	// Drivers registered for the bucket URLs the service accepts.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"

	"outreach/internal/errors"
)

// Slot names for the five persisted collections plus the schema marker.
const (
	SlotUsers         = "users.json"
	SlotPatients      = "patients.json"
	SlotInventory     = "inventory.json"
	SlotStaff         = "staff.json"
	SlotFinance       = "finance.json"
	SlotSchemaVersion = "schema_version"
)

// CurrentSchemaVersion is the compiled-in shape version of the persisted
// slots. Bump it whenever a slot's encoding changes incompatibly; the schema
// guard then clears everything except the users slot on next startup.
const CurrentSchemaVersion = 1

// RecordStore wraps a blob bucket with slot-oriented typed access.
type RecordStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// OpenBucket opens the durable local store area from a gocloud blob URL,
// e.g. "file:///var/lib/outreach" or "mem://".
func OpenBucket(ctx context.Context, url string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open store bucket %s", url)
	}

	return bucket, nil
}

// New creates a RecordStore over an opened bucket.
func New(bucket *blob.Bucket, logger *slog.Logger) *RecordStore {
	return &RecordStore{
		bucket: bucket,
		logger: logger,
	}
}

// ReadRaw returns the raw contents of a slot. A missing slot is not an error;
// it reports ok=false, as does any read failure (which is logged).
func (s *RecordStore) ReadRaw(ctx context.Context, slot string) ([]byte, bool) {
	data, err := s.bucket.ReadAll(ctx, slot)
	if err != nil {
		if gcerrors.Code(err) != gcerrors.NotFound {
			s.logger.Warn("record store read failed",
				slog.String("slot", slot),
				slog.Any("error", err),
			)
		}

		return nil, false
	}

	return data, true
}

// WriteRaw replaces the contents of a slot.
func (s *RecordStore) WriteRaw(ctx context.Context, slot string, data []byte) error {
	if err := s.bucket.WriteAll(ctx, slot, data, nil); err != nil {
		return errors.Wrapf(err, "write slot %s", slot)
	}

	return nil
}

// DeleteSlot removes a slot; removing an absent slot is a no-op.
func (s *RecordStore) DeleteSlot(ctx context.Context, slot string) error {
	if err := s.bucket.Delete(ctx, slot); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete slot %s", slot)
	}

	return nil
}

// ClearAll deletes every slot in the store area, including the schema marker.
func (s *RecordStore) ClearAll(ctx context.Context) error {
	iter := s.bucket.List(nil)
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "list store slots")
		}
		if err := s.bucket.Delete(ctx, obj.Key); err != nil {
			return errors.Wrapf(err, "clear slot %s", obj.Key)
		}
	}
}

// SchemaVersion returns the persisted schema version marker. ok is false when
// the marker is absent or unparsable.
func (s *RecordStore) SchemaVersion(ctx context.Context) (int, bool) {
	data, ok := s.ReadRaw(ctx, SlotSchemaVersion)
	if !ok {
		return 0, false
	}

	version, err := strconv.Atoi(string(data))
	if err != nil {
		s.logger.Warn("schema version marker unparsable", slog.String("raw", string(data)))

		return 0, false
	}

	return version, true
}

// SetSchemaVersion rewrites the schema version marker.
func (s *RecordStore) SetSchemaVersion(ctx context.Context, version int) error {
	return s.WriteRaw(ctx, SlotSchemaVersion, []byte(strconv.Itoa(version)))
}

// SlotSizes reports the byte size of every populated slot, for diagnostics.
func (s *RecordStore) SlotSizes(ctx context.Context) map[string]int64 {
	sizes := make(map[string]int64)
	iter := s.bucket.List(nil)
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			return sizes
		}
		if err != nil {
			s.logger.Warn("record store list failed", slog.Any("error", err))

			return sizes
		}
		sizes[obj.Key] = obj.Size
	}
}

// LoadSlice decodes a slot into a slice of T. A missing or corrupt slot yields
// an empty slice, with the failure logged.
func LoadSlice[T any](ctx context.Context, s *RecordStore, slot string) []T {
	data, ok := s.ReadRaw(ctx, slot)
	if !ok {
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn("record store slot unparsable, loading empty collection",
			slog.String("slot", slot),
			slog.Any("error", err),
		)

		return nil
	}

	return items
}

// SaveSlice encodes a slice of T into a slot. Callers treat failure as
// "change is in-memory only" and log it.
func SaveSlice[T any](ctx context.Context, s *RecordStore, slot string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "encode slot %s", slot)
	}

	return s.WriteRaw(ctx, slot, data)
}

// LoadValue decodes a singleton slot into a T. ok is false when the slot is
// absent or unparsable, letting the caller substitute a default value.
func LoadValue[T any](ctx context.Context, s *RecordStore, slot string) (T, bool) {
	var value T
	data, ok := s.ReadRaw(ctx, slot)
	if !ok {
		return value, false
	}

	if err := json.Unmarshal(data, &value); err != nil {
		s.logger.Warn("record store slot unparsable, loading default value",
			slog.String("slot", slot),
			slog.Any("error", err),
		)

		return value, false
	}

	return value, true
}

// SaveValue encodes a singleton value into a slot.
func SaveValue[T any](ctx context.Context, s *RecordStore, slot string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode slot %s", slot)
	}

	return s.WriteRaw(ctx, slot, data)
}
