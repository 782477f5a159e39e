package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"kakeibo/internal/dateutil"
	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/models"
	"kakeibo/internal/pagination"
	"kakeibo/internal/summary"
)

// expenseService handles actual-expense business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense records a new expense after verifying the category belongs
// to the user.
func (s *expenseService) CreateExpense(userID, categoryID string, amount int64, expenseDate time.Time, memo string) (*models.Expense, error) {
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}

	var category models.Category
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expense := &models.Expense{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		ExpenseDate: expenseDate,
		Memo:        memo,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	expense.Category = category

	return expense, nil
}

// GetExpenseByID retrieves an expense by ID for a specific user
func (s *expenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Preload("Category").
		Where("id = ? AND user_id = ?", expenseID, userID).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense mutates amount, category, date, or memo of an expense.
func (s *expenseService) UpdateExpense(userID, expenseID string, amount *int64, categoryID *string, expenseDate *time.Time, memo *string) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if amount != nil {
		if *amount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
		}
		updates["amount"] = *amount
	}
	if categoryID != nil {
		var category models.Category
		if err := s.db.Where("id = ? AND user_id = ?", *categoryID, userID).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		updates["category_id"] = *categoryID
	}
	if expenseDate != nil {
		updates["expense_date"] = *expenseDate
	}
	if memo != nil {
		updates["memo"] = *memo
	}

	if len(updates) > 0 {
		if err := s.db.Model(expense).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetExpenseByID(userID, expenseID)
}

// DeleteExpense soft-deletes an expense.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListByDate returns the expenses on one calendar date, newest first.
func (s *expenseService) ListByDate(userID string, date time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Preload("Category").
		Where("user_id = ? AND expense_date = ?", userID, date).
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// ListMonth returns a page of the month's expenses, oldest date first.
func (s *expenseService) ListMonth(userID string, year, month int, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()
	first, last := dateutil.MonthWindow(year, month)

	base := s.db.Model(&models.Expense{}).
		Where("user_id = ? AND expense_date BETWEEN ? AND ?", userID, first, last)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Preload("Category").
		Order("expense_date ASC, created_at ASC").
		Scopes(pagination.Paginate(page)).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// MonthlyTotal sums the month's expenses.
func (s *expenseService) MonthlyTotal(userID string, year, month int) (int64, error) {
	first, last := dateutil.MonthWindow(year, month)
	return s.sumWindow(userID, first, last)
}

// WeeklyTotal sums expenses from the most recent Monday through today,
// both inclusive.
func (s *expenseService) WeeklyTotal(userID string, today time.Time) (int64, error) {
	return s.sumWindow(userID, dateutil.WeekStart(today), today)
}

// DayTotal sums the expenses on a single calendar date.
func (s *expenseService) DayTotal(userID string, date time.Time) (int64, error) {
	return s.sumWindow(userID, date, date)
}

// DayRows fetches the month's dated amounts for the aggregation core.
// The window filter lives here; the per-day grouping is pure.
func (s *expenseService) DayRows(userID string, year, month int) ([]summary.DatedAmount, error) {
	first, last := dateutil.MonthWindow(year, month)

	var expenses []models.Expense
	if err := s.db.Select("expense_date", "amount").
		Where("user_id = ? AND expense_date BETWEEN ? AND ?", userID, first, last).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rows := make([]summary.DatedAmount, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, summary.DatedAmount{Date: e.ExpenseDate, Amount: e.Amount})
	}
	return rows, nil
}

func (s *expenseService) sumWindow(userID string, first, last time.Time) (int64, error) {
	var total int64
	err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND expense_date BETWEEN ? AND ?", userID, first, last).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}
