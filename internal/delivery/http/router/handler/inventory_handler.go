package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"outreach/internal/delivery/http/response"
	"outreach/internal/domain/entity"
	"outreach/internal/usecase"
)

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	Logger      *slog.Logger
}

// InventoryHandler holds dependencies for inventory-related handlers
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: params.InventoryUC,
		logger:      params.Logger,
	}
}

// ItemRequest represents the request body for adding or updating an item
type ItemRequest struct {
	ID           string  `json:"id"`
	Name         string  `json:"name" validate:"required"`
	Category     string  `json:"category" validate:"required,oneof=medicine vaccine supply equipment"`
	CurrentStock int     `json:"current_stock" validate:"gte=0"`
	MinimumStock int     `json:"minimum_stock" validate:"gte=0"`
	BatchNumber  string  `json:"batch_number"`
	ExpiryDate   string  `json:"expiry_date"`
	Supplier     string  `json:"supplier"`
	Manufacturer string  `json:"manufacturer"`
	StorageTemp  string  `json:"storage_temp"`
	CostPerUnit  float64 `json:"cost_per_unit" validate:"gte=0"`
}

// UpdateStockRequest represents the request body for setting stock on hand
type UpdateStockRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

func (r *ItemRequest) toEntity() entity.InventoryItem {
	return entity.InventoryItem{
		ID:           r.ID,
		Name:         r.Name,
		Category:     entity.ItemCategory(r.Category),
		CurrentStock: r.CurrentStock,
		MinimumStock: r.MinimumStock,
		BatchNumber:  r.BatchNumber,
		ExpiryDate:   r.ExpiryDate,
		Supplier:     r.Supplier,
		Manufacturer: r.Manufacturer,
		StorageTemp:  r.StorageTemp,
		CostPerUnit:  r.CostPerUnit,
	}
}

// AddItem handles adding an inventory item
func (h *InventoryHandler) AddItem(c echo.Context) error {
	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.inventoryUC.AddItem(c.Request().Context(), req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Item added successfully")
}

// GetItem handles retrieving a single inventory item
func (h *InventoryHandler) GetItem(c echo.Context) error {
	item, err := h.inventoryUC.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Item retrieved successfully")
}

// ListItems handles listing inventory with optional category/low-stock filters
func (h *InventoryHandler) ListItems(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		items []entity.InventoryItem
		err   error
	)
	switch {
	case c.QueryParam("category") != "":
		items, err = h.inventoryUC.ListItemsByCategory(ctx, entity.ItemCategory(c.QueryParam("category")))
		if err != nil {
			return response.BadRequest(c, "INVALID_CATEGORY", err.Error())
		}
	case c.QueryParam("low_stock") == "true":
		items = h.inventoryUC.ListLowStockItems(ctx)
	default:
		items = h.inventoryUC.ListItems(ctx)
	}

	return response.Success(c, http.StatusOK, items, "Items retrieved successfully")
}

// UpdateItem handles replacing an inventory item
func (h *InventoryHandler) UpdateItem(c echo.Context) error {
	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item := req.toEntity()
	item.ID = c.Param("id")

	updated, err := h.inventoryUC.UpdateItem(c.Request().Context(), item)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated, "Item updated successfully")
}

// UpdateStock handles setting the on-hand quantity
func (h *InventoryHandler) UpdateStock(c echo.Context) error {
	var req UpdateStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.inventoryUC.UpdateStock(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Stock updated successfully")
}

// DeleteItem handles removing an inventory item
func (h *InventoryHandler) DeleteItem(c echo.Context) error {
	if err := h.inventoryUC.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Item deleted successfully")
}
