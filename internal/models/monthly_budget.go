package models

// MonthlyBudget holds the single budget amount for one (user, year, month).
// Setting a budget for an existing month overwrites the row; no history is
// kept.
type MonthlyBudget struct {
	Base
	UserID       string `gorm:"type:uuid;not null;uniqueIndex:idx_budget_user_year_month" json:"user_id"`
	Year         int    `gorm:"not null;uniqueIndex:idx_budget_user_year_month" json:"year"`
	Month        int    `gorm:"not null;uniqueIndex:idx_budget_user_year_month" json:"month"`
	BudgetAmount int64  `gorm:"type:bigint;not null" json:"budget_amount"`
}
