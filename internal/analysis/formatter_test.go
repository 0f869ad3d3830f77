package analysis

import (
	"testing"

	"github.com/quillback/scanledger/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatSpending(t *testing.T) {
	formatter := NewFormatter()

	t.Run("empty breakdown", func(t *testing.T) {
		out := formatter.FormatSpending(nil)
		assert.Contains(t, out, "No spending recorded")
	})

	t.Run("ranked table", func(t *testing.T) {
		out := formatter.FormatSpending([]CategorySpending{
			{Category: model.CategoryGroceries, Total: 300.00, Percentage: 60.0},
			{Category: model.CategoryDining, Total: 200.00, Percentage: 40.0},
		})
		assert.Contains(t, out, "Groceries")
		assert.Contains(t, out, "300.00")
		assert.Contains(t, out, "60.0%")
	})
}

func TestFormatBudgets(t *testing.T) {
	formatter := NewFormatter()

	t.Run("no budgets", func(t *testing.T) {
		out := formatter.FormatBudgets(nil)
		assert.Contains(t, out, "No budgets configured")
	})

	t.Run("status rows", func(t *testing.T) {
		out := formatter.FormatBudgets([]BudgetStatus{
			{
				Budget:         model.Budget{Category: model.CategoryDining, MonthlyLimit: 150.00},
				Spent:          200.00,
				Remaining:      -50.00,
				PercentageUsed: 133.33,
				OverBudget:     true,
			},
		})
		assert.Contains(t, out, "Dining")
		assert.Contains(t, out, "200.00")
		assert.Contains(t, out, "-50.00")
	})
}

func TestFormatTrend(t *testing.T) {
	out := NewFormatter().FormatTrend(TrendReport{
		Timeframe:     TimeframeMonth,
		Direction:     TrendIncreasing,
		ChangePercent: 12.5,
		Points: []TrendPoint{
			{PeriodStart: day(2024, 5, 1), Total: 100.00},
			{PeriodStart: day(2024, 6, 1), Total: 112.50},
		},
	})

	assert.Contains(t, out, "increasing")
	assert.Contains(t, out, "12.5%")
	assert.Contains(t, out, "2024-05-01")
	assert.Contains(t, out, "112.50")
}

func TestFormatInsights(t *testing.T) {
	out := NewFormatter().FormatInsights(SpendingInsights{
		Summary: "Spent 500.00 across 2 categories between 2024-06-01 and 2024-06-30.",
		TopCategories: []CategorySpending{
			{Category: model.CategoryGroceries, Total: 300.00, Percentage: 60.0},
		},
		Insights:        []string{"Dining spending rose 300% over the prior period (200.00 from 50.00)."},
		Prediction:      415.00,
		PredictionBasis: "mean of 2 non-empty monthly buckets over the last three months",
		Recommendations: []string{"Dining is over budget by 50.00 this month."},
	})

	assert.Contains(t, out, "Spending Insights")
	assert.Contains(t, out, "Spent 500.00")
	assert.Contains(t, out, "Dining spending rose")
	assert.Contains(t, out, "415.00")
	assert.Contains(t, out, "over budget by 50.00")
}
