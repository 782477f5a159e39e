// Package summary contains the pure aggregation core: daily totals, merged
// actual/planned data, remaining-budget derivations, and severity
// classification. Every function is a pure function of its inputs; callers
// are responsible for fetching rows already scoped to the right user and
// date window.
package summary

import (
	"time"

	"kakeibo/internal/dateutil"
)

// DatedAmount is a single amount row carrying its calendar date.
type DatedAmount struct {
	Date   time.Time
	Amount int64
}

// DayData holds the actual and planned totals for one calendar date.
type DayData struct {
	Actual  int64 `json:"actual"`
	Planned int64 `json:"planned"`
}

// DaySeverity classifies a single day's spending against the daily average
// derived from the monthly budget.
type DaySeverity string

const (
	DayEmpty DaySeverity = "empty"
	DayOK    DaySeverity = "ok"
	DayWarn  DaySeverity = "warn"
	DayOver  DaySeverity = "over"
)

// RemainingStatus classifies a remaining-budget figure for display.
type RemainingStatus string

const (
	RemainingNegative RemainingStatus = "negative"
	RemainingLow      RemainingStatus = "low"
	RemainingHealthy  RemainingStatus = "healthy"
)

// lowRemainingThreshold is the boundary, in yen, below which a non-negative
// remaining amount counts as low.
const lowRemainingThreshold = 10000

// DailyTotals sums rows per calendar date. Rows outside the caller's window
// must already be excluded by the query.
func DailyTotals(rows []DatedAmount) map[string]int64 {
	totals := make(map[string]int64, len(rows))
	for _, row := range rows {
		totals[dateutil.Format(row.Date)] += row.Amount
	}
	return totals
}

// Total sums all row amounts.
func Total(rows []DatedAmount) int64 {
	var sum int64
	for _, row := range rows {
		sum += row.Amount
	}
	return sum
}

// MergeDaily combines actual and planned per-date totals into one map keyed
// by the union of dates. A date present on only one side gets zero for the
// other.
func MergeDaily(actual, planned map[string]int64) map[string]DayData {
	merged := make(map[string]DayData, len(actual)+len(planned))
	for date, amount := range actual {
		merged[date] = DayData{Actual: amount}
	}
	for date, amount := range planned {
		data := merged[date]
		data.Planned = amount
		merged[date] = data
	}
	return merged
}

// MonthRemaining is the monthly budget minus the month's actual total.
// A negative result means overspend and is a valid state, not an error.
func MonthRemaining(budget, actualTotal int64) int64 {
	return budget - actualTotal
}

// MonthRemainingWithPlanned subtracts the month's planned total from the
// month remaining. May be negative.
func MonthRemainingWithPlanned(monthRemaining, plannedTotal int64) int64 {
	return monthRemaining - plannedTotal
}

// WeekRemaining prorates the monthly budget to seven days and subtracts the
// week's actual spending: (budget / daysInMonth) * 7 - weeklyActual.
// This assumes a uniform daily spend rate; it is not a calendar-week budget.
func WeekRemaining(budget int64, daysInMonth int, weeklyActual int64) float64 {
	return float64(budget)/float64(daysInMonth)*7 - float64(weeklyActual)
}

// ClassifyDay rates one day's actual total against the daily average
// budget/daysInMonth. Zero spending is its own state, distinct from a day
// within budget. Both upper boundaries are inclusive. daysInMonth is always
// at least 28, so the division is safe; a zero budget classifies any
// spending as over.
func ClassifyDay(total, budget int64, daysInMonth int) DaySeverity {
	if total == 0 {
		return DayEmpty
	}
	dailyAverage := float64(budget) / float64(daysInMonth)
	switch {
	case float64(total) <= dailyAverage:
		return DayOK
	case float64(total) <= dailyAverage*1.5:
		return DayWarn
	default:
		return DayOver
	}
}

// ClassifyRemaining rates a remaining amount: negative when overspent, low
// below 10,000 yen, healthy otherwise.
func ClassifyRemaining(remaining int64) RemainingStatus {
	switch {
	case remaining < 0:
		return RemainingNegative
	case remaining < lowRemainingThreshold:
		return RemainingLow
	default:
		return RemainingHealthy
	}
}
