package local

import (
	"context"
	"log/slog"
	"sync"

	"outreach/internal/domain/entity"
	"outreach/internal/domain/repository"
	"outreach/internal/infra/persistence/blobstore"
)

type staffRepository struct {
	mu      sync.Mutex
	entries []entity.StaffRecord
	store   *blobstore.RecordStore
	logger  *slog.Logger
}

// NewStaffRepository loads the staff slot and returns the store for manually
// added staff entries. Entries projected from user accounts never pass through
// here; the staff service rebuilds those on demand.
func NewStaffRepository(ctx context.Context, store *blobstore.RecordStore, logger *slog.Logger) repository.StaffRepository {
	repo := &staffRepository{
		store:  store,
		logger: logger,
	}
	repo.entries = blobstore.LoadSlice[entity.StaffRecord](ctx, store, blobstore.SlotStaff)
	logger.Info("staff collection loaded", slog.Int("count", len(repo.entries)))

	return repo
}

func (r *staffRepository) All(ctx context.Context) []entity.StaffRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.StaffRecord, len(r.entries))
	for i := range r.entries {
		out[i] = r.entries[i].Clone()
	}

	return out
}

func (r *staffRepository) FindByID(ctx context.Context, id string) (*entity.StaffRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].ID == id {
			record := r.entries[i].Clone()

			return &record, nil
		}
	}

	return nil, repository.ErrStaffNotFound
}

func (r *staffRepository) Add(ctx context.Context, record entity.StaffRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].ID == record.ID {
			return repository.ErrDuplicateStaff
		}
	}

	r.entries = append(r.entries, record.Clone())
	r.writeThrough(ctx)

	return nil
}

func (r *staffRepository) Update(ctx context.Context, record entity.StaffRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].ID == record.ID {
			r.entries[i] = record.Clone()
			r.writeThrough(ctx)

			return nil
		}
	}

	return repository.ErrStaffNotFound
}

func (r *staffRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			r.writeThrough(ctx)

			return nil
		}
	}

	return repository.ErrStaffNotFound
}

func (r *staffRepository) writeThrough(ctx context.Context) {
	if err := blobstore.SaveSlice(ctx, r.store, blobstore.SlotStaff, r.entries); err != nil {
		r.logger.Warn("staff write-through failed, change is in-memory only", slog.Any("error", err))
	}
}
