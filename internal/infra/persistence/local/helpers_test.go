package local

import (
	"io"
	"log/slog"
	"testing"

	"gocloud.dev/blob/memblob"

	"outreach/internal/infra/persistence/blobstore"
)

func newStore(t *testing.T) *blobstore.RecordStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return blobstore.New(bucket, discardLogger())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
