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

// plannedExpenseService handles planned-expense business logic.
type plannedExpenseService struct {
	db *gorm.DB
}

// NewPlannedExpenseService creates a new PlannedExpenseServicer.
func NewPlannedExpenseService(db *gorm.DB) PlannedExpenseServicer {
	return &plannedExpenseService{db: db}
}

// CreatePlannedExpense records anticipated future spending.
func (s *plannedExpenseService) CreatePlannedExpense(userID, categoryID string, amount int64, plannedDate time.Time, memo string) (*models.PlannedExpense, error) {
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

	planned := &models.PlannedExpense{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		PlannedDate: plannedDate,
		Memo:        memo,
	}

	if err := s.db.Create(planned).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	planned.Category = category

	return planned, nil
}

// GetPlannedExpenseByID retrieves a planned expense by ID for a specific user
func (s *plannedExpenseService) GetPlannedExpenseByID(userID, plannedExpenseID string) (*models.PlannedExpense, error) {
	var planned models.PlannedExpense
	if err := s.db.Preload("Category").
		Where("id = ? AND user_id = ?", plannedExpenseID, userID).
		First(&planned).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlannedExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &planned, nil
}

// UpdatePlannedExpense mutates amount, category, date, or memo.
func (s *plannedExpenseService) UpdatePlannedExpense(userID, plannedExpenseID string, amount *int64, categoryID *string, plannedDate *time.Time, memo *string) (*models.PlannedExpense, error) {
	planned, err := s.GetPlannedExpenseByID(userID, plannedExpenseID)
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
	if plannedDate != nil {
		updates["planned_date"] = *plannedDate
	}
	if memo != nil {
		updates["memo"] = *memo
	}

	if len(updates) > 0 {
		if err := s.db.Model(planned).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetPlannedExpenseByID(userID, plannedExpenseID)
}

// DeletePlannedExpense soft-deletes a planned expense.
func (s *plannedExpenseService) DeletePlannedExpense(userID, plannedExpenseID string) error {
	planned, err := s.GetPlannedExpenseByID(userID, plannedExpenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(planned).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListMonth returns a page of the month's planned expenses in date order.
func (s *plannedExpenseService) ListMonth(userID string, year, month int, page pagination.PageRequest) (*pagination.PageResponse[models.PlannedExpense], error) {
	page.Defaults()
	first, last := dateutil.MonthWindow(year, month)

	base := s.db.Model(&models.PlannedExpense{}).
		Where("user_id = ? AND planned_date BETWEEN ? AND ?", userID, first, last)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var planned []models.PlannedExpense
	if err := base.Preload("Category").
		Order("planned_date ASC, created_at ASC").
		Scopes(pagination.Paginate(page)).
		Find(&planned).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(planned, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// MonthlyTotal sums the month's planned expenses.
func (s *plannedExpenseService) MonthlyTotal(userID string, year, month int) (int64, error) {
	first, last := dateutil.MonthWindow(year, month)

	var total int64
	err := s.db.Model(&models.PlannedExpense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND planned_date BETWEEN ? AND ?", userID, first, last).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// DayRows fetches the month's dated planned amounts for the aggregation core.
func (s *plannedExpenseService) DayRows(userID string, year, month int) ([]summary.DatedAmount, error) {
	first, last := dateutil.MonthWindow(year, month)

	var planned []models.PlannedExpense
	if err := s.db.Select("planned_date", "amount").
		Where("user_id = ? AND planned_date BETWEEN ? AND ?", userID, first, last).
		Find(&planned).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rows := make([]summary.DatedAmount, 0, len(planned))
	for _, p := range planned {
		rows = append(rows, summary.DatedAmount{Date: p.PlannedDate, Amount: p.Amount})
	}
	return rows, nil
}
