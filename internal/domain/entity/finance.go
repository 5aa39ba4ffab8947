package entity

// BudgetOverview summarizes the annual budget position. Utilized, Remaining
// and UtilizationRate are recomputed from the category map whenever any
// category changes.
type BudgetOverview struct {
	AnnualBudget    float64 `json:"annualBudget"`    // Total budget for the financial year.
	Utilized        float64 `json:"utilized"`        // Sum of spend across all categories.
	Remaining       float64 `json:"remaining"`       // AnnualBudget minus Utilized.
	UtilizationRate float64 `json:"utilizationRate"` // Utilized over AnnualBudget, percentage.
}

// CategoryBudget is the budget line for a single spend category.
type CategoryBudget struct {
	Name        string  `json:"name"`        // Display name, e.g. "Medicines & Supplies".
	Allocated   float64 `json:"allocated"`   // Amount allocated to the category.
	Spent       float64 `json:"spent"`       // Amount spent so far.
	Percentage  float64 `json:"percentage"`  // Spent over Allocated, percentage.
	Description string  `json:"description"` // What the category covers.
}

// Remaining derives the unspent allocation for the category.
func (c CategoryBudget) Remaining() float64 {
	return c.Allocated - c.Spent
}

// FinancialSummary is the singleton financial aggregate: one overview plus a
// category-keyed budget map.
type FinancialSummary struct {
	Overview      BudgetOverview            `json:"overview"`      // Recomputed aggregate position.
	Categories    map[string]CategoryBudget `json:"categories"`    // Budget lines keyed by category key, e.g. "medicines".
	FinancialYear string                    `json:"financialYear"` // e.g. "2026-27".
}

// SetCategorySpent records spend against a category, recomputing the category
// percentage and the overall utilization. It reports false when the category
// key is unknown, leaving the summary untouched.
func (f *FinancialSummary) SetCategorySpent(key string, spent float64) bool {
	category, ok := f.Categories[key]
	if !ok {
		return false
	}

	category.Spent = spent
	if category.Allocated > 0 {
		category.Percentage = spent / category.Allocated * 100
	}
	f.Categories[key] = category
	f.Recalculate()

	return true
}

// Recalculate rebuilds the overview from the category map.
func (f *FinancialSummary) Recalculate() {
	var totalSpent float64
	for _, category := range f.Categories {
		totalSpent += category.Spent
	}

	f.Overview.Utilized = totalSpent
	f.Overview.Remaining = f.Overview.AnnualBudget - totalSpent
	if f.Overview.AnnualBudget > 0 {
		f.Overview.UtilizationRate = totalSpent / f.Overview.AnnualBudget * 100
	}
}

// Clone returns a deep copy so callers cannot mutate repository state through
// the shared category map.
func (f FinancialSummary) Clone() FinancialSummary {
	out := f
	out.Categories = make(map[string]CategoryBudget, len(f.Categories))
	for key, category := range f.Categories {
		out.Categories[key] = category
	}

	return out
}

// DefaultFinancialSummary seeds the singleton on first run so the aggregate is
// never absent. Allocations follow the standard facility budget split.
func DefaultFinancialSummary(financialYear string) *FinancialSummary {
	summary := &FinancialSummary{
		Overview: BudgetOverview{AnnualBudget: 15_000_000},
		Categories: map[string]CategoryBudget{
			"staff": {
				Name:        "Staff Salaries",
				Allocated:   8_000_000,
				Description: "Salaries and wages for all staff members",
			},
			"medicines": {
				Name:        "Medicines & Supplies",
				Allocated:   3_000_000,
				Description: "Medical supplies, drugs, and consumables",
			},
			"equipment": {
				Name:        "Medical Equipment",
				Allocated:   2_000_000,
				Description: "Medical devices and equipment maintenance",
			},
			"infrastructure": {
				Name:        "Infrastructure",
				Allocated:   1_500_000,
				Description: "Building maintenance and utilities",
			},
			"training": {
				Name:        "Training & Development",
				Allocated:   500_000,
				Description: "Staff training and capacity building",
			},
		},
		FinancialYear: financialYear,
	}
	summary.Recalculate()

	return summary
}
