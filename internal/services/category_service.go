package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/models"
)

// defaultCategories is the seed catalog for new users, in display order.
var defaultCategories = []string{
	"Food",
	"Transport",
	"Daily Goods",
	"Entertainment",
	"Medical",
	"Other",
}

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category for the user
func (s *categoryService) CreateCategory(userID, name string, sortOrder int) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	// Check if a category with the same name already exists for this user
	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateName
	}

	// Append at the end when no explicit position is given
	if sortOrder == 0 {
		var maxOrder int64
		if err := s.db.Model(&models.Category{}).
			Where("user_id = ?", userID).
			Select("COALESCE(MAX(sort_order), 0)").
			Scan(&maxOrder).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		sortOrder = int(maxOrder) + 1
	}

	category := &models.Category{
		UserID:    userID,
		Name:      name,
		SortOrder: sortOrder,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// GetUserCategories retrieves all categories for a user in display order.
func (s *categoryService) GetUserCategories(userID string) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("user_id = ?", userID).
		Order("sort_order ASC").
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by ID for a specific user
func (s *categoryService) GetCategoryByID(userID, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// UpdateCategory renames or reorders an existing category
func (s *categoryService) UpdateCategory(userID, categoryID, name string, sortOrder *int) (*models.Category, error) {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" && name != category.Name {
		var count int64
		if err := s.db.Model(&models.Category{}).
			Where("user_id = ? AND name = ? AND id <> ?", userID, name, categoryID).
			Count(&count).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return nil, apperrors.ErrDuplicateName
		}
		updates["name"] = name
	}
	if sortOrder != nil {
		updates["sort_order"] = *sortOrder
	}

	if len(updates) > 0 {
		if err := s.db.Model(category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return category, nil
}

// DeleteCategory deletes a category unless it is still referenced.
// The reference check and the delete run in one transaction so a concurrent
// insert cannot slip between them.
func (s *categoryService) DeleteCategory(userID, categoryID string) error {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var expenseCount int64
		if err := tx.Model(&models.Expense{}).
			Where("user_id = ? AND category_id = ?", userID, categoryID).
			Count(&expenseCount).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var plannedCount int64
		if err := tx.Model(&models.PlannedExpense{}).
			Where("user_id = ? AND category_id = ?", userID, categoryID).
			Count(&plannedCount).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if expenseCount > 0 || plannedCount > 0 {
			return apperrors.ErrCategoryInUse
		}

		if err := tx.Delete(category).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// SeedDefaults creates the six default categories for a user who has none.
// Idempotent: once at least one category exists nothing is inserted.
func (s *categoryService) SeedDefaults(userID string) error {
	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil
	}

	categories := make([]models.Category, 0, len(defaultCategories))
	for i, name := range defaultCategories {
		categories = append(categories, models.Category{
			UserID:    userID,
			Name:      name,
			SortOrder: i + 1,
		})
	}

	if err := s.db.Create(&categories).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
