package models

import "time"

// PlannedExpense represents anticipated future spending, keyed by
// PlannedDate. It has a lifecycle independent of Expense and is never
// converted into one automatically.
type PlannedExpense struct {
	Base
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  string    `gorm:"type:uuid;not null" json:"category_id"`
	Amount      int64     `gorm:"type:bigint;not null" json:"amount"`
	PlannedDate time.Time `gorm:"type:date;not null;index" json:"planned_date"`
	Memo        string    `json:"memo"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
