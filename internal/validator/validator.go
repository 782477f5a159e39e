// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// dateLayout matches internal/dateutil.Layout; redeclared here to keep this
// package free of project imports inside the binding hot path.
const dateLayout = "2006-01-02"

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("calendar_date", validateCalendarDate)
		_ = v.RegisterValidation("month_number", validateMonthNumber)
	}
}

// validateCalendarDate accepts YYYY-MM-DD strings that parse to a real date.
func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(dateLayout, fl.Field().String())
	return err == nil
}

// validateMonthNumber accepts integers 1 through 12.
func validateMonthNumber(fl validator.FieldLevel) bool {
	m := fl.Field().Int()
	return m >= 1 && m <= 12
}
