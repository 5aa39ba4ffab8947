package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach/internal/domain/entity"
	"outreach/internal/infra/persistence/local"
	"outreach/internal/usecase"
)

func newInventoryFixture(t *testing.T) usecase.InventoryUsecase {
	t.Helper()

	ctx := context.Background()
	inventoryRepo := local.NewInventoryRepository(ctx, newTestStore(t), discardLogger())

	return NewInventoryService(inventoryRepo)
}

func TestInventoryService_AddItem(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newInventoryFixture(t)

	item, err := svc.AddItem(ctx, entity.InventoryItem{
		Name:         "IFA Tablets",
		Category:     entity.CategoryMedicine,
		CurrentStock: -5,
		MinimumStock: 20,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Zero(t, item.CurrentStock, "negative stock clamps to zero")

	_, err = svc.AddItem(ctx, entity.InventoryItem{Name: "X", Category: entity.ItemCategory("toys")})
	assert.Error(t, err)
}

func TestInventoryService_StockWorkflow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newInventoryFixture(t)

	item, err := svc.AddItem(ctx, entity.InventoryItem{
		ID:           "bcg",
		Name:         "BCG Vaccine",
		Category:     entity.CategoryVaccine,
		CurrentStock: 50,
		MinimumStock: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusIn, item.StockStatus())

	// One unit above the minimum still counts as in stock.
	updated, err := svc.UpdateStock(ctx, "bcg", 11)
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusIn, updated.StockStatus())

	updated, err = svc.UpdateStock(ctx, "bcg", 10)
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusLow, updated.StockStatus())

	updated, err = svc.UpdateStock(ctx, "bcg", -3)
	require.NoError(t, err)
	assert.Zero(t, updated.CurrentStock)
	assert.Equal(t, entity.StockStatusOut, updated.StockStatus())

	low := svc.ListLowStockItems(ctx)
	require.Len(t, low, 1)
	assert.Equal(t, "bcg", low[0].ID)
}

func TestInventoryService_ListItemsByCategory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newInventoryFixture(t)

	_, err := svc.AddItem(ctx, entity.InventoryItem{ID: "ifa", Name: "IFA", Category: entity.CategoryMedicine})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, entity.InventoryItem{ID: "bcg", Name: "BCG", Category: entity.CategoryVaccine})
	require.NoError(t, err)

	medicines, err := svc.ListItemsByCategory(ctx, entity.CategoryMedicine)
	require.NoError(t, err)
	require.Len(t, medicines, 1)
	assert.Equal(t, "ifa", medicines[0].ID)

	_, err = svc.ListItemsByCategory(ctx, entity.ItemCategory("toys"))
	assert.Error(t, err)
}
