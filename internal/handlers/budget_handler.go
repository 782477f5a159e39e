package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/services"
)

// BudgetHandler handles monthly-budget requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// SetBudgetRequest represents the request payload for setting a monthly budget.
type SetBudgetRequest struct {
	BudgetAmount *int64 `json:"budget_amount" binding:"required,gte=0"`
}

// BudgetResponse represents a monthly budget in the response. An unset month
// reads as amount 0.
type BudgetResponse struct {
	Year         int   `json:"year"`
	Month        int   `json:"month"`
	BudgetAmount int64 `json:"budget_amount"`
}

// GetBudget handles reading the budget for one month.
// @Summary     Get monthly budget
// @Description Get the budget for a given month; months without a budget read as 0
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       year  path int true "Year"
// @Param       month path int true "Month (1-12)"
// @Success     200 {object} BudgetResponse "Monthly budget"
// @Failure     400 {object} ErrorResponse "Invalid year or month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{year}/{month} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, month, err := parseYearMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	amount, err := h.budgetService.GetMonthlyBudget(userID, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": BudgetResponse{
		Year:         year,
		Month:        month,
		BudgetAmount: amount,
	}})
}

// SetBudget handles writing the budget for one month (insert or overwrite).
// @Summary     Set monthly budget
// @Description Set the budget for a given month, overwriting any previous value
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       year    path int              true "Year"
// @Param       month   path int              true "Month (1-12)"
// @Param       request body SetBudgetRequest true "Budget amount"
// @Success     200 {object} BudgetResponse "Monthly budget saved"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{year}/{month} [put]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, month, err := parseYearMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.SetMonthlyBudget(userID, year, month, *req.BudgetAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SET_BUDGET", "monthly_budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"year": year, "month": month, "budget_amount": *req.BudgetAmount})

	c.JSON(http.StatusOK, gin.H{"budget": BudgetResponse{
		Year:         budget.Year,
		Month:        budget.Month,
		BudgetAmount: budget.BudgetAmount,
	}})
}
