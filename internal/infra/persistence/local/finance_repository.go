package local

import (
	"context"
	"log/slog"
	"sync"

	"outreach/internal/domain/entity"
	"outreach/internal/domain/repository"
	"outreach/internal/infra/persistence/blobstore"
)

type financeRepository struct {
	mu      sync.Mutex
	summary entity.FinancialSummary
	store   *blobstore.RecordStore
	logger  *slog.Logger
}

// NewFinanceRepository loads the finance slot, seeding the default summary
// when the slot is absent or corrupt so the singleton is never missing.
func NewFinanceRepository(ctx context.Context, store *blobstore.RecordStore, financialYear string, logger *slog.Logger) repository.FinanceRepository {
	repo := &financeRepository{
		store:  store,
		logger: logger,
	}

	summary, ok := blobstore.LoadValue[entity.FinancialSummary](ctx, store, blobstore.SlotFinance)
	if !ok || summary.Categories == nil {
		seeded := entity.DefaultFinancialSummary(financialYear)
		summary = *seeded
		repo.summary = summary
		repo.writeThrough(ctx)
		logger.Info("financial summary seeded",
			slog.String("financialYear", financialYear),
			slog.Int("categories", len(summary.Categories)),
		)
	} else {
		repo.summary = summary
	}

	return repo
}

func (r *financeRepository) Get(ctx context.Context) entity.FinancialSummary {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.summary.Clone()
}

func (r *financeRepository) Replace(ctx context.Context, summary entity.FinancialSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.summary = summary.Clone()
	r.summary.Recalculate()
	r.writeThrough(ctx)
}

func (r *financeRepository) UpdateCategory(ctx context.Context, key string, spent float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.summary.SetCategorySpent(key, spent) {
		return repository.ErrCategoryNotFound
	}
	r.writeThrough(ctx)

	return nil
}

func (r *financeRepository) writeThrough(ctx context.Context) {
	if err := blobstore.SaveValue(ctx, r.store, blobstore.SlotFinance, r.summary); err != nil {
		r.logger.Warn("finance write-through failed, change is in-memory only", slog.Any("error", err))
	}
}
