package usecase

import (
	"context"

	"outreach/internal/domain/entity"
)

// FinanceUsecase defines the interface for the budget summary use cases
type FinanceUsecase interface {
	// GetSummary returns the current financial summary.
	GetSummary(ctx context.Context) entity.FinancialSummary

	// UpdateCategorySpend records spend against a budget category,
	// recomputing the category percentage and the overall utilization.
	UpdateCategorySpend(ctx context.Context, key string, spent float64) (*entity.FinancialSummary, error)

	// ReplaceSummary swaps in a complete summary, e.g. at the start of a new
	// financial year. The overview is recomputed from the category map.
	ReplaceSummary(ctx context.Context, summary entity.FinancialSummary) entity.FinancialSummary
}
