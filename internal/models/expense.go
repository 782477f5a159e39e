package models

import "time"

// Expense represents a realized expenditure on a calendar date.
// Amount is in whole yen; ExpenseDate carries no time-of-day.
type Expense struct {
	Base
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  string    `gorm:"type:uuid;not null" json:"category_id"`
	Amount      int64     `gorm:"type:bigint;not null" json:"amount"`
	ExpenseDate time.Time `gorm:"type:date;not null;index" json:"expense_date"`
	Memo        string    `json:"memo"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
