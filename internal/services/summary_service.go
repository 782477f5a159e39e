package services

import (
	"golang.org/x/sync/errgroup"

	"kakeibo/internal/dateutil"
	"kakeibo/internal/logger"
	"kakeibo/internal/summary"
)

// summaryService composes store reads with the pure aggregation core.
// Reads for one page fan out concurrently and are joined before deriving
// figures; they may observe different instants if a write lands in between,
// which is accepted for this low-contention data.
type summaryService struct {
	expenses ExpenseServicer
	planned  PlannedExpenseServicer
	budgets  BudgetServicer
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(expenses ExpenseServicer, planned PlannedExpenseServicer, budgets BudgetServicer) SummaryServicer {
	return &summaryService{expenses: expenses, planned: planned, budgets: budgets}
}

// HomeSummary builds the remaining-budget payload for today's month.
func (s *summaryService) HomeSummary(userID string) (*HomeSummary, error) {
	today := dateutil.Today()
	year, month := today.Year(), int(today.Month())

	var (
		budget       int64
		monthlyTotal int64
		weeklyTotal  int64
		todayTotal   int64
		plannedTotal int64
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		budget, err = s.budgets.GetMonthlyBudget(userID, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		monthlyTotal, err = s.expenses.MonthlyTotal(userID, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		weeklyTotal, err = s.expenses.WeeklyTotal(userID, today)
		return err
	})
	g.Go(func() error {
		var err error
		todayTotal, err = s.expenses.DayTotal(userID, today)
		return err
	})
	g.Go(func() error {
		// Planned-expense reads degrade to zero instead of failing the
		// whole page; actual-expense failures propagate.
		total, err := s.planned.MonthlyTotal(userID, year, month)
		if err != nil {
			logger.Get().Warnw("planned expense total unavailable, using 0",
				"user_id", userID, "year", year, "month", month, "error", err.Error(),
			)
			return nil
		}
		plannedTotal = total
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	monthRemaining := summary.MonthRemaining(budget, monthlyTotal)
	withPlanned := summary.MonthRemainingWithPlanned(monthRemaining, plannedTotal)

	return &HomeSummary{
		Year:                      year,
		Month:                     month,
		Today:                     dateutil.Format(today),
		MonthlyBudget:             budget,
		MonthlyTotal:              monthlyTotal,
		MonthRemaining:            monthRemaining,
		MonthRemainingStatus:      summary.ClassifyRemaining(monthRemaining),
		MonthlyPlannedTotal:       plannedTotal,
		MonthRemainingWithPlanned: withPlanned,
		PlannedRemainingStatus:    summary.ClassifyRemaining(withPlanned),
		WeekRemaining:             summary.WeekRemaining(budget, dateutil.DaysInMonth(year, month), weeklyTotal),
		TodayTotal:                todayTotal,
	}, nil
}

// CalendarSummary builds the month view: merged actual/planned daily data
// over the union of dates, plus one classified cell per day of the month.
func (s *summaryService) CalendarSummary(userID string, year, month int) (*CalendarSummary, error) {
	var (
		budget      int64
		actualRows  []summary.DatedAmount
		plannedRows []summary.DatedAmount
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		budget, err = s.budgets.GetMonthlyBudget(userID, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		actualRows, err = s.expenses.DayRows(userID, year, month)
		return err
	})
	g.Go(func() error {
		rows, err := s.planned.DayRows(userID, year, month)
		if err != nil {
			logger.Get().Warnw("planned expense rows unavailable, using empty set",
				"user_id", userID, "year", year, "month", month, "error", err.Error(),
			)
			return nil
		}
		plannedRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	actualDaily := summary.DailyTotals(actualRows)
	plannedDaily := summary.DailyTotals(plannedRows)
	merged := summary.MergeDaily(actualDaily, plannedDaily)

	daysInMonth := dateutil.DaysInMonth(year, month)
	first, _ := dateutil.MonthWindow(year, month)

	days := make([]CalendarDay, 0, daysInMonth)
	for day := 0; day < daysInMonth; day++ {
		date := first.AddDate(0, 0, day)
		key := dateutil.Format(date)
		data := merged[key]
		days = append(days, CalendarDay{
			Date:     key,
			Actual:   data.Actual,
			Planned:  data.Planned,
			Severity: summary.ClassifyDay(data.Actual, budget, daysInMonth),
		})
	}

	return &CalendarSummary{
		Year:          year,
		Month:         month,
		DaysInMonth:   daysInMonth,
		MonthlyBudget: budget,
		TotalActual:   summary.Total(actualRows),
		TotalPlanned:  summary.Total(plannedRows),
		Days:          days,
		DailyData:     merged,
	}, nil
}
