package impl

import (
	"context"
	"fmt"

	"outreach/internal/domain/entity"
	"outreach/internal/domain/repository"
	"outreach/internal/usecase"
)

type financeService struct {
	financeRepo repository.FinanceRepository
}

// NewFinanceService creates a new finance service instance
func NewFinanceService(financeRepo repository.FinanceRepository) usecase.FinanceUsecase {
	return &financeService{financeRepo: financeRepo}
}

// GetSummary returns the current financial summary
func (s *financeService) GetSummary(ctx context.Context) entity.FinancialSummary {
	return s.financeRepo.Get(ctx)
}

// UpdateCategorySpend records spend against a budget category
func (s *financeService) UpdateCategorySpend(ctx context.Context, key string, spent float64) (*entity.FinancialSummary, error) {
	if spent < 0 {
		return nil, fmt.Errorf("spend cannot be negative")
	}

	if err := s.financeRepo.UpdateCategory(ctx, key, spent); err != nil {
		return nil, fmt.Errorf("failed to update budget category: %w", err)
	}

	summary := s.financeRepo.Get(ctx)

	return &summary, nil
}

// ReplaceSummary swaps in a complete summary, recomputing the overview
func (s *financeService) ReplaceSummary(ctx context.Context, summary entity.FinancialSummary) entity.FinancialSummary {
	s.financeRepo.Replace(ctx, summary)

	return s.financeRepo.Get(ctx)
}
