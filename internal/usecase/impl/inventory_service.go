package impl

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"outreach/internal/domain/entity"
	"outreach/internal/domain/repository"
	"outreach/internal/usecase"
)

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
}

// NewInventoryService creates a new inventory service instance
func NewInventoryService(inventoryRepo repository.InventoryRepository) usecase.InventoryUsecase {
	return &inventoryService{inventoryRepo: inventoryRepo}
}

// AddItem inserts a new inventory item
func (s *inventoryService) AddItem(ctx context.Context, item entity.InventoryItem) (*entity.InventoryItem, error) {
	if !item.Category.IsValid() {
		return nil, fmt.Errorf("invalid item category: %s", item.Category)
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CurrentStock < 0 {
		item.CurrentStock = 0
	}

	if err := s.inventoryRepo.Add(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add inventory item: %w", err)
	}

	return &item, nil
}

// GetItem retrieves a single item by identifier
func (s *inventoryService) GetItem(ctx context.Context, id string) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}

	return item, nil
}

// ListItems returns every item
func (s *inventoryService) ListItems(ctx context.Context) []entity.InventoryItem {
	return s.inventoryRepo.All(ctx)
}

// ListItemsByCategory returns the items in the given category
func (s *inventoryService) ListItemsByCategory(ctx context.Context, category entity.ItemCategory) ([]entity.InventoryItem, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid item category: %s", category)
	}

	return s.inventoryRepo.FindByCategory(ctx, category), nil
}

// ListLowStockItems returns the items at or below their reorder threshold
func (s *inventoryService) ListLowStockItems(ctx context.Context) []entity.InventoryItem {
	return s.inventoryRepo.FindLowStock(ctx)
}

// UpdateItem replaces the stored item
func (s *inventoryService) UpdateItem(ctx context.Context, item entity.InventoryItem) (*entity.InventoryItem, error) {
	if !item.Category.IsValid() {
		return nil, fmt.Errorf("invalid item category: %s", item.Category)
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}

	return &item, nil
}

// UpdateStock sets the on-hand quantity for an item, clamping at zero
func (s *inventoryService) UpdateStock(ctx context.Context, id string, quantity int) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}

	if quantity < 0 {
		quantity = 0
	}
	item.CurrentStock = quantity

	if err := s.inventoryRepo.Update(ctx, *item); err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}

	return item, nil
}

// DeleteItem removes the item
func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	if err := s.inventoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}

	return nil
}
