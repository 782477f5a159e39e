package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"kakeibo/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date builds a calendar date at midnight UTC, the representation used
// throughout the aggregation code.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string) *models.Category {
	t.Helper()

	n := nextID()
	category := &models.Category{
		UserID:    userID,
		Name:      fmt.Sprintf("Test Category %d", n),
		SortOrder: int(n),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestExpense creates an expense of the given amount (in yen) on the
// given calendar date.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, categoryID string, amount int64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		ExpenseDate: date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestPlannedExpense creates a planned expense of the given amount on
// the given calendar date.
func CreateTestPlannedExpense(t *testing.T, db *gorm.DB, userID, categoryID string, amount int64, date time.Time) *models.PlannedExpense {
	t.Helper()

	planned := &models.PlannedExpense{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		PlannedDate: date,
	}
	if err := db.Create(planned).Error; err != nil {
		t.Fatalf("failed to create test planned expense: %v", err)
	}
	return planned
}

// CreateTestBudget creates a monthly budget row.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID string, year, month int, amount int64) *models.MonthlyBudget {
	t.Helper()

	budget := &models.MonthlyBudget{
		UserID:       userID,
		Year:         year,
		Month:        month,
		BudgetAmount: amount,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
