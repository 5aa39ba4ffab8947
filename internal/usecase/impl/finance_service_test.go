package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach/internal/domain/repository"
	"outreach/internal/infra/persistence/local"
	"outreach/internal/usecase"
)

func newFinanceFixture(t *testing.T) usecase.FinanceUsecase {
	t.Helper()

	ctx := context.Background()
	financeRepo := local.NewFinanceRepository(ctx, newTestStore(t), "2026-27", discardLogger())

	return NewFinanceService(financeRepo)
}

func TestFinanceService_GetSummary(t *testing.T) {
	t.Parallel()

	svc := newFinanceFixture(t)

	summary := svc.GetSummary(context.Background())
	assert.Equal(t, "2026-27", summary.FinancialYear)
	assert.NotEmpty(t, summary.Categories)
}

func TestFinanceService_UpdateCategorySpend(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newFinanceFixture(t)

	summary, err := svc.UpdateCategorySpend(ctx, "equipment", 400000)
	require.NoError(t, err)
	assert.InDelta(t, 400000, summary.Categories["equipment"].Spent, 0.001)
	assert.InDelta(t, 400000, summary.Overview.Utilized, 0.001)

	_, err = svc.UpdateCategorySpend(ctx, "equipment", -1)
	assert.Error(t, err, "negative spend is rejected")

	_, err = svc.UpdateCategorySpend(ctx, "helicopters", 100)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestFinanceService_ReplaceSummary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newFinanceFixture(t)

	summary := svc.GetSummary(ctx)
	summary.FinancialYear = "2027-28"
	category := summary.Categories["staff"]
	category.Spent = 1000000
	summary.Categories["staff"] = category

	replaced := svc.ReplaceSummary(ctx, summary)
	assert.Equal(t, "2027-28", replaced.FinancialYear)
	assert.InDelta(t, 1000000, replaced.Overview.Utilized, 0.001)
}
