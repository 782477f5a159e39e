package services

import (
	"time"

	"kakeibo/internal/models"
	"kakeibo/internal/pagination"
	"kakeibo/internal/summary"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, displayName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name string, sortOrder int) (*models.Category, error)
	GetUserCategories(userID string) ([]models.Category, error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	UpdateCategory(userID, categoryID, name string, sortOrder *int) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
	SeedDefaults(userID string) error
}

// ExpenseServicer defines the contract for actual-expense business logic.
type ExpenseServicer interface {
	CreateExpense(userID, categoryID string, amount int64, expenseDate time.Time, memo string) (*models.Expense, error)
	GetExpenseByID(userID, expenseID string) (*models.Expense, error)
	UpdateExpense(userID, expenseID string, amount *int64, categoryID *string, expenseDate *time.Time, memo *string) (*models.Expense, error)
	DeleteExpense(userID, expenseID string) error
	ListByDate(userID string, date time.Time) ([]models.Expense, error)
	ListMonth(userID string, year, month int, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	MonthlyTotal(userID string, year, month int) (int64, error)
	WeeklyTotal(userID string, today time.Time) (int64, error)
	DayTotal(userID string, date time.Time) (int64, error)
	DayRows(userID string, year, month int) ([]summary.DatedAmount, error)
}

// PlannedExpenseServicer defines the contract for planned-expense business logic.
type PlannedExpenseServicer interface {
	CreatePlannedExpense(userID, categoryID string, amount int64, plannedDate time.Time, memo string) (*models.PlannedExpense, error)
	GetPlannedExpenseByID(userID, plannedExpenseID string) (*models.PlannedExpense, error)
	UpdatePlannedExpense(userID, plannedExpenseID string, amount *int64, categoryID *string, plannedDate *time.Time, memo *string) (*models.PlannedExpense, error)
	DeletePlannedExpense(userID, plannedExpenseID string) error
	ListMonth(userID string, year, month int, page pagination.PageRequest) (*pagination.PageResponse[models.PlannedExpense], error)
	MonthlyTotal(userID string, year, month int) (int64, error)
	DayRows(userID string, year, month int) ([]summary.DatedAmount, error)
}

// BudgetServicer defines the contract for monthly-budget business logic.
type BudgetServicer interface {
	GetMonthlyBudget(userID string, year, month int) (int64, error)
	SetMonthlyBudget(userID string, year, month int, amount int64) (*models.MonthlyBudget, error)
}

// HomeSummary is the remaining-budget payload for the home view.
type HomeSummary struct {
	Year                      int                     `json:"year"`
	Month                     int                     `json:"month"`
	Today                     string                  `json:"today"`
	MonthlyBudget             int64                   `json:"monthly_budget"`
	MonthlyTotal              int64                   `json:"monthly_total"`
	MonthRemaining            int64                   `json:"month_remaining"`
	MonthRemainingStatus      summary.RemainingStatus `json:"month_remaining_status"`
	MonthlyPlannedTotal       int64                   `json:"monthly_planned_total"`
	MonthRemainingWithPlanned int64                   `json:"month_remaining_with_planned"`
	PlannedRemainingStatus    summary.RemainingStatus `json:"planned_remaining_status"`
	WeekRemaining             float64                 `json:"week_remaining"`
	TodayTotal                int64                   `json:"today_total"`
}

// CalendarDay is one cell of the month view.
type CalendarDay struct {
	Date     string              `json:"date"`
	Actual   int64               `json:"actual"`
	Planned  int64               `json:"planned"`
	Severity summary.DaySeverity `json:"severity"`
}

// CalendarSummary is the aggregated month view: merged actual/planned daily
// data plus per-day severity classification for calendar coloring.
type CalendarSummary struct {
	Year          int                        `json:"year"`
	Month         int                        `json:"month"`
	DaysInMonth   int                        `json:"days_in_month"`
	MonthlyBudget int64                      `json:"monthly_budget"`
	TotalActual   int64                      `json:"total_actual"`
	TotalPlanned  int64                      `json:"total_planned"`
	Days          []CalendarDay              `json:"days"`
	DailyData     map[string]summary.DayData `json:"daily_data"`
}

// SummaryServicer composes store reads with the pure aggregation core.
type SummaryServicer interface {
	HomeSummary(userID string) (*HomeSummary, error)
	CalendarSummary(userID string, year, month int) (*CalendarSummary, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
