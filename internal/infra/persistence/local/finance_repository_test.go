package local

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach/internal/domain/repository"
)

const testYear = "2026-27"

func TestFinanceRepository_SeedsDefaultOnEmptyStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewFinanceRepository(ctx, newStore(t), testYear, discardLogger())

	summary := repo.Get(ctx)
	assert.Equal(t, testYear, summary.FinancialYear)
	assert.NotEmpty(t, summary.Categories)
	assert.Positive(t, summary.Overview.AnnualBudget)
	assert.Zero(t, summary.Overview.Utilized)
	assert.Equal(t, summary.Overview.AnnualBudget, summary.Overview.Remaining)
}

func TestFinanceRepository_SeededSummarySurvivesRestart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newStore(t)

	repo := NewFinanceRepository(ctx, store, testYear, discardLogger())
	require.NoError(t, repo.UpdateCategory(ctx, "medicines", 50000))

	reopened := NewFinanceRepository(ctx, store, testYear, discardLogger())
	summary := reopened.Get(ctx)
	assert.InDelta(t, 50000, summary.Categories["medicines"].Spent, 0.001)
}

func TestFinanceRepository_UpdateCategoryRecomputesOverview(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewFinanceRepository(ctx, newStore(t), testYear, discardLogger())

	require.NoError(t, repo.UpdateCategory(ctx, "medicines", 1500000))

	summary := repo.Get(ctx)
	category := summary.Categories["medicines"]
	assert.InDelta(t, 1500000, category.Spent, 0.001)
	assert.InDelta(t, category.Spent/category.Allocated*100, category.Percentage, 0.001)

	assert.InDelta(t, 1500000, summary.Overview.Utilized, 0.001)
	assert.InDelta(t, summary.Overview.AnnualBudget-1500000, summary.Overview.Remaining, 0.001)
	assert.InDelta(t, 1500000/summary.Overview.AnnualBudget*100, summary.Overview.UtilizationRate, 0.001)
}

func TestFinanceRepository_UpdateUnknownCategory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewFinanceRepository(ctx, newStore(t), testYear, discardLogger())

	err := repo.UpdateCategory(ctx, "helicopters", 100)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestFinanceRepository_GetReturnsDefensiveCopy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewFinanceRepository(ctx, newStore(t), testYear, discardLogger())

	summary := repo.Get(ctx)
	summary.SetCategorySpent("medicines", 999999)

	fresh := repo.Get(ctx)
	assert.Zero(t, fresh.Categories["medicines"].Spent)
}

func TestFinanceRepository_ReplaceRecalculates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewFinanceRepository(ctx, newStore(t), testYear, discardLogger())

	summary := repo.Get(ctx)
	summary.FinancialYear = "2027-28"
	category := summary.Categories["training"]
	category.Spent = 200000
	summary.Categories["training"] = category

	repo.Replace(ctx, summary)

	stored := repo.Get(ctx)
	assert.Equal(t, "2027-28", stored.FinancialYear)
	assert.InDelta(t, 200000, stored.Overview.Utilized, 0.001, "overview recomputed on replace")
}
