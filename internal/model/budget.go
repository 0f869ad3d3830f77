package model

import "time"

// Budget is a user-defined monthly spending limit for one category.
// At most one budget exists per category per month.
type Budget struct {
	Month           time.Time
	Category        Category
	MonthlyLimit    float64
	CurrentSpending float64
}

// MonthStart returns the first instant of the budget's calendar month.
func (b Budget) MonthStart() time.Time {
	return time.Date(b.Month.Year(), b.Month.Month(), 1, 0, 0, 0, 0, b.Month.Location())
}

// MonthEnd returns the last day of the budget's calendar month at
// day granularity.
func (b Budget) MonthEnd() time.Time {
	return b.MonthStart().AddDate(0, 1, -1)
}
