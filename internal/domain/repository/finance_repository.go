package repository

import (
	"context"
	"errors"

	"outreach/internal/domain/entity"
)

// ErrCategoryNotFound is returned when a budget update references an unknown
// category key.
var ErrCategoryNotFound = errors.New("budget category not found")

// FinanceRepository stores the singleton financial summary. A missing or
// corrupt slot loads as the default-valued summary, never as an error.
type FinanceRepository interface {
	// Get returns a defensive copy of the summary.
	Get(ctx context.Context) entity.FinancialSummary

	// Replace swaps in a new summary and writes it through to local storage.
	Replace(ctx context.Context, summary entity.FinancialSummary)

	// UpdateCategory records spend against a category, recomputing the
	// category percentage and the overall utilization before writing through.
	UpdateCategory(ctx context.Context, key string, spent float64) error
}
