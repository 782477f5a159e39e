package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/models"
)

// budgetService handles monthly-budget business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// GetMonthlyBudget returns the budget for (user, year, month).
// A missing row is budget 0, not an error.
func (s *budgetService) GetMonthlyBudget(userID string, year, month int) (int64, error) {
	var budget models.MonthlyBudget
	err := s.db.Where("user_id = ? AND year = ? AND month = ?", userID, year, month).
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget.BudgetAmount, nil
}

// SetMonthlyBudget writes the budget for (user, year, month): insert when
// absent, overwrite when present. The conflict target is the natural unique
// key, so the write is atomic and no history is kept.
func (s *budgetService) SetMonthlyBudget(userID string, year, month int, amount int64) (*models.MonthlyBudget, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget amount must not be negative")
	}

	budget := &models.MonthlyBudget{
		UserID:       userID,
		Year:         year,
		Month:        month,
		BudgetAmount: amount,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "year"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"budget_amount", "updated_at"}),
	}).Create(budget).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Re-read so the caller sees the surviving row, not the insert candidate.
	var saved models.MonthlyBudget
	if err := s.db.Where("user_id = ? AND year = ? AND month = ?", userID, year, month).
		First(&saved).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &saved, nil
}
