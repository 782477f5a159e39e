package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/services"
)

// SummaryHandler handles aggregated summary requests.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// CalendarQuery represents the query parameters for the calendar summary.
type CalendarQuery struct {
	Year  int `form:"year" binding:"required,min=1"`
	Month int `form:"month" binding:"required,month_number"`
}

// GetHomeSummary handles the remaining-budget payload for the current month.
// @Summary     Get home summary
// @Description Get current-month figures: budget, totals, remaining amounts with statuses, prorated week remaining, today's total
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.HomeSummary "Home summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/home [get]
func (h *SummaryHandler) GetHomeSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	home, err := h.summaryService.HomeSummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": home})
}

// GetCalendarSummary handles the aggregated month view for calendar display.
// @Summary     Get calendar summary
// @Description Get per-day actual/planned totals and severity classification for one month
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       year  query int true "Year"
// @Param       month query int true "Month (1-12)"
// @Success     200 {object} services.CalendarSummary "Calendar summary"
// @Failure     400 {object} ErrorResponse "Invalid year or month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/calendar [get]
func (h *SummaryHandler) GetCalendarSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query CalendarQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	calendar, err := h.summaryService.CalendarSummary(userID, query.Year, query.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": calendar})
}
