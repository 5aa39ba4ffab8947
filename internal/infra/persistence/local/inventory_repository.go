package local

import (
	"context"
	"log/slog"
	"sync"

	"outreach/internal/domain/entity"
	"outreach/internal/domain/repository"
	"outreach/internal/infra/persistence/blobstore"
)

type inventoryRepository struct {
	mu     sync.Mutex
	items  []entity.InventoryItem
	store  *blobstore.RecordStore
	logger *slog.Logger
}

// NewInventoryRepository loads the inventory slot and returns the
// authoritative in-memory store for inventory items. Inventory has no remote
// merge path; the mutex only serializes local write-throughs.
func NewInventoryRepository(ctx context.Context, store *blobstore.RecordStore, logger *slog.Logger) repository.InventoryRepository {
	repo := &inventoryRepository{
		store:  store,
		logger: logger,
	}
	repo.items = blobstore.LoadSlice[entity.InventoryItem](ctx, store, blobstore.SlotInventory)
	logger.Info("inventory collection loaded", slog.Int("count", len(repo.items)))

	return repo
}

func (r *inventoryRepository) All(ctx context.Context) []entity.InventoryItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.InventoryItem, len(r.items))
	copy(out, r.items)

	return out
}

func (r *inventoryRepository) FindByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			item := r.items[i]

			return &item, nil
		}
	}

	return nil, repository.ErrItemNotFound
}

func (r *inventoryRepository) FindByCategory(ctx context.Context, category entity.ItemCategory) []entity.InventoryItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []entity.InventoryItem
	for i := range r.items {
		if r.items[i].Category == category {
			matched = append(matched, r.items[i])
		}
	}

	return matched
}

func (r *inventoryRepository) FindLowStock(ctx context.Context) []entity.InventoryItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []entity.InventoryItem
	for i := range r.items {
		if r.items[i].IsLowStock() {
			matched = append(matched, r.items[i])
		}
	}

	return matched
}

func (r *inventoryRepository) Add(ctx context.Context, item entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == item.ID {
			return repository.ErrDuplicateItem
		}
	}

	r.items = append(r.items, item)
	r.writeThrough(ctx)

	return nil
}

func (r *inventoryRepository) Update(ctx context.Context, item entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = item
			r.writeThrough(ctx)

			return nil
		}
	}

	return repository.ErrItemNotFound
}

func (r *inventoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.writeThrough(ctx)

			return nil
		}
	}

	return repository.ErrItemNotFound
}

func (r *inventoryRepository) writeThrough(ctx context.Context) {
	if err := blobstore.SaveSlice(ctx, r.store, blobstore.SlotInventory, r.items); err != nil {
		r.logger.Warn("inventory write-through failed, change is in-memory only", slog.Any("error", err))
	}
}
