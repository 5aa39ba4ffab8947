package usecase

import (
	"context"

	"outreach/internal/domain/entity"
)

// InventoryUsecase defines the interface for facility inventory use cases.
// Inventory is local-only; nothing here touches the remote replica.
type InventoryUsecase interface {
	// AddItem inserts a new inventory item, assigning an identifier when the
	// input carries none.
	AddItem(ctx context.Context, item entity.InventoryItem) (*entity.InventoryItem, error)

	// GetItem retrieves a single item by identifier.
	GetItem(ctx context.Context, id string) (*entity.InventoryItem, error)

	// ListItems returns every item.
	ListItems(ctx context.Context) []entity.InventoryItem

	// ListItemsByCategory returns the items in the given category.
	ListItemsByCategory(ctx context.Context, category entity.ItemCategory) ([]entity.InventoryItem, error)

	// ListLowStockItems returns the items at or below their reorder
	// threshold, including out-of-stock items.
	ListLowStockItems(ctx context.Context) []entity.InventoryItem

	// UpdateItem replaces the stored item.
	UpdateItem(ctx context.Context, item entity.InventoryItem) (*entity.InventoryItem, error)

	// UpdateStock sets the on-hand quantity for an item. Negative quantities
	// are clamped to zero.
	UpdateStock(ctx context.Context, id string, quantity int) (*entity.InventoryItem, error)

	// DeleteItem removes the item.
	DeleteItem(ctx context.Context, id string) error
}
