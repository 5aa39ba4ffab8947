package repository

import (
	"context"
	"errors"

	"outreach/internal/domain/entity"
)

// ErrItemNotFound is returned when no inventory item matches the identifier.
var ErrItemNotFound = errors.New("inventory item not found")

// ErrDuplicateItem is returned when an item with the same identifier already
// exists.
var ErrDuplicateItem = errors.New("inventory item id already registered")

// InventoryRepository is the authoritative local store for inventory items.
// Inventory is mutated only by local calls; there is no remote merge path.
type InventoryRepository interface {
	// All returns every item in collection order.
	All(ctx context.Context) []entity.InventoryItem

	// FindByID retrieves a single item by identifier.
	FindByID(ctx context.Context, id string) (*entity.InventoryItem, error)

	// FindByCategory returns the items in the given category.
	FindByCategory(ctx context.Context, category entity.ItemCategory) []entity.InventoryItem

	// FindLowStock returns the items at or below their reorder threshold,
	// including out-of-stock items.
	FindLowStock(ctx context.Context) []entity.InventoryItem

	// Add inserts a new item, rejecting duplicate identifiers with
	// ErrDuplicateItem.
	Add(ctx context.Context, item entity.InventoryItem) error

	// Update replaces the stored item matching the identifier.
	Update(ctx context.Context, item entity.InventoryItem) error

	// Delete removes the item with the given identifier.
	Delete(ctx context.Context, id string) error
}
