package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"outreach/internal/delivery/http/response"
	"outreach/internal/usecase"
)

// FinanceHandlerParams holds dependencies for FinanceHandler, injected by Fx.
type FinanceHandlerParams struct {
	fx.In

	FinanceUC usecase.FinanceUsecase
	Logger    *slog.Logger
}

// FinanceHandler holds dependencies for budget summary handlers
type FinanceHandler struct {
	financeUC usecase.FinanceUsecase
	logger    *slog.Logger
}

// NewFinanceHandler is the constructor for FinanceHandler
func NewFinanceHandler(params FinanceHandlerParams) *FinanceHandler {
	return &FinanceHandler{
		financeUC: params.FinanceUC,
		logger:    params.Logger,
	}
}

// UpdateCategorySpendRequest represents the request body for recording spend
type UpdateCategorySpendRequest struct {
	Spent float64 `json:"spent" validate:"gte=0"`
}

// GetSummary handles retrieving the financial summary
func (h *FinanceHandler) GetSummary(c echo.Context) error {
	summary := h.financeUC.GetSummary(c.Request().Context())

	return response.Success(c, http.StatusOK, summary, "Financial summary retrieved successfully")
}

// UpdateCategorySpend handles recording spend against a budget category
func (h *FinanceHandler) UpdateCategorySpend(c echo.Context) error {
	var req UpdateCategorySpendRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid spend input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	summary, err := h.financeUC.UpdateCategorySpend(c.Request().Context(), c.Param("key"), req.Spent)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Budget category updated successfully")
}
