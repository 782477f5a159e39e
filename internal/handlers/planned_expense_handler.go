package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kakeibo/internal/dateutil"
	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/pagination"
	"kakeibo/internal/services"
)

// PlannedExpenseHandler handles planned-expense requests.
type PlannedExpenseHandler struct {
	plannedService services.PlannedExpenseServicer
	auditService   services.AuditServicer
}

// NewPlannedExpenseHandler creates a new PlannedExpenseHandler.
func NewPlannedExpenseHandler(plannedService services.PlannedExpenseServicer, auditService services.AuditServicer) *PlannedExpenseHandler {
	return &PlannedExpenseHandler{plannedService: plannedService, auditService: auditService}
}

// CreatePlannedExpenseRequest represents the request payload for scheduling
// anticipated spending.
type CreatePlannedExpenseRequest struct {
	CategoryID  string `json:"category_id" binding:"required"`
	Amount      *int64 `json:"amount" binding:"required,gte=0"`
	PlannedDate string `json:"planned_date" binding:"required,calendar_date"`
	Memo        string `json:"memo" binding:"max=500"`
}

// UpdatePlannedExpenseRequest represents the request payload for updating a
// planned expense. Absent fields are left untouched.
type UpdatePlannedExpenseRequest struct {
	CategoryID  *string `json:"category_id"`
	Amount      *int64  `json:"amount" binding:"omitempty,gte=0"`
	PlannedDate *string `json:"planned_date" binding:"omitempty,calendar_date"`
	Memo        *string `json:"memo" binding:"omitempty,max=500"`
}

// ListPlannedExpensesRequest represents the query parameters for the month
// listing.
type ListPlannedExpensesRequest struct {
	Year  int `form:"year" binding:"required,min=1"`
	Month int `form:"month" binding:"required,month_number"`
	pagination.PageRequest
}

// CreatePlannedExpense handles scheduling a new planned expense.
// @Summary     Schedule a planned expense
// @Description Record anticipated spending on a future calendar date
// @Tags        planned-expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePlannedExpenseRequest true "Planned expense details"
// @Success     201 {object} models.PlannedExpense "Planned expense recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /planned-expenses [post]
func (h *PlannedExpenseHandler) CreatePlannedExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePlannedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := dateutil.Parse(req.PlannedDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid planned_date"))
		return
	}

	planned, err := h.plannedService.CreatePlannedExpense(userID, req.CategoryID, *req.Amount, date, req.Memo)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_PLANNED_EXPENSE", "planned_expense", planned.ID, c.ClientIP(),
		map[string]interface{}{"amount": *req.Amount, "planned_date": req.PlannedDate})

	c.JSON(http.StatusCreated, gin.H{"planned_expense": planned})
}

// GetPlannedExpenses handles listing a month of planned expenses.
// @Summary     List planned expenses
// @Description List a paginated month of planned expenses (?year=&month=)
// @Tags        planned-expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       year      query int true  "Year of the month window"
// @Param       month     query int true  "Month of the month window (1-12)"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.PlannedExpense] "Planned expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /planned-expenses [get]
func (h *PlannedExpenseHandler) GetPlannedExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ListPlannedExpensesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.plannedService.ListMonth(userID, req.Year, req.Month, req.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPlannedExpense handles retrieving a specific planned expense.
// @Summary     Get planned expense by ID
// @Description Get a specific planned expense by ID
// @Tags        planned-expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Planned expense ID"
// @Success     200 {object} models.PlannedExpense "Planned expense details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Planned expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /planned-expenses/{id} [get]
func (h *PlannedExpenseHandler) GetPlannedExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	planned, err := h.plannedService.GetPlannedExpenseByID(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"planned_expense": planned})
}

// UpdatePlannedExpense handles updating an existing planned expense.
// @Summary     Update planned expense
// @Description Update amount, category, date, or memo of a planned expense
// @Tags        planned-expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                      true "Planned expense ID"
// @Param       request body UpdatePlannedExpenseRequest true "Updated planned expense details"
// @Success     200 {object} models.PlannedExpense "Updated planned expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Planned expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /planned-expenses/{id} [put]
func (h *PlannedExpenseHandler) UpdatePlannedExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePlannedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var date *time.Time
	if req.PlannedDate != nil {
		parsed, err := dateutil.Parse(*req.PlannedDate)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid planned_date"))
			return
		}
		date = &parsed
	}

	plannedID := c.Param("id")
	planned, err := h.plannedService.UpdatePlannedExpense(userID, plannedID, req.Amount, req.CategoryID, date, req.Memo)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_PLANNED_EXPENSE", "planned_expense", plannedID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"planned_expense": planned})
}

// DeletePlannedExpense handles deleting a planned expense.
// @Summary     Delete planned expense
// @Description Delete a planned expense by ID (soft delete)
// @Tags        planned-expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Planned expense ID"
// @Success     200 {object} MessageResponse "Planned expense deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Planned expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /planned-expenses/{id} [delete]
func (h *PlannedExpenseHandler) DeletePlannedExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	plannedID := c.Param("id")
	if err := h.plannedService.DeletePlannedExpense(userID, plannedID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_PLANNED_EXPENSE", "planned_expense", plannedID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Planned expense deleted successfully"})
}
