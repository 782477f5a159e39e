package models

// Category represents a user-defined spending category. Categories are
// ordered by SortOrder for display and cannot be deleted while any expense
// or planned expense still references them.
type Category struct {
	Base
	UserID    string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string `gorm:"not null" json:"name"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`

	Expenses        []Expense        `gorm:"foreignKey:CategoryID" json:"expenses,omitempty"`
	PlannedExpenses []PlannedExpense `gorm:"foreignKey:CategoryID" json:"planned_expenses,omitempty"`
}
