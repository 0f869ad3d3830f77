// Package analysis aggregates receipts and budgets into spending summaries
// and trend statistics. Everything here is a pure transform over snapshot
// inputs; outputs are computed fresh per request and never persisted.
package analysis

import (
	"time"

	"github.com/quillback/scanledger/internal/model"
)

// Timeframe selects the lookback window and bucket granularity for trend
// analysis.
type Timeframe string

const (
	// TimeframeWeek looks back one week with weekly buckets.
	TimeframeWeek Timeframe = "week"
	// TimeframeMonth looks back one month with monthly buckets.
	TimeframeMonth Timeframe = "month"
	// TimeframeThreeMonths looks back three months with monthly buckets.
	TimeframeThreeMonths Timeframe = "3months"
	// TimeframeSixMonths looks back six months with monthly buckets.
	TimeframeSixMonths Timeframe = "6months"
	// TimeframeYear looks back one year with monthly buckets.
	TimeframeYear Timeframe = "year"
)

// Timeframes lists every supported timeframe.
func Timeframes() []Timeframe {
	return []Timeframe{
		TimeframeWeek,
		TimeframeMonth,
		TimeframeThreeMonths,
		TimeframeSixMonths,
		TimeframeYear,
	}
}

// TrendDirection classifies the overall movement of spending.
type TrendDirection string

const (
	// TrendIncreasing indicates spending grew beyond the dead zone.
	TrendIncreasing TrendDirection = "increasing"
	// TrendDecreasing indicates spending shrank beyond the dead zone.
	TrendDecreasing TrendDirection = "decreasing"
	// TrendStable indicates change within the dead zone.
	TrendStable TrendDirection = "stable"
)

// BudgetStatus is the recomputed standing of one budget against the
// receipts in its month.
type BudgetStatus struct {
	Budget         model.Budget
	Spent          float64
	Remaining      float64
	PercentageUsed float64
	OverBudget     bool
}

// TrendPoint is one bucket of the trend series.
type TrendPoint struct {
	PeriodStart time.Time
	Total       float64
}

// TrendReport is the deterministic input a natural-language summarizer
// consumes. ChangePercent compares the first and last non-empty buckets.
type TrendReport struct {
	GeneratedAt   time.Time
	Timeframe     Timeframe
	Direction     TrendDirection
	ChangePercent float64
	Points        []TrendPoint
}

// CategorySpending is one entry of a ranked category breakdown.
type CategorySpending struct {
	Category   model.Category
	Total      float64
	Percentage float64
}

// SpendingInsights is a computed snapshot of spending for a period:
// a summary slot, ranked categories, itemized insight records, a numeric
// next-period prediction with its rationale, and recommendations. Callers
// cache or discard it; the core never stores it.
type SpendingInsights struct {
	GeneratedAt     time.Time
	PeriodStart     time.Time
	PeriodEnd       time.Time
	Summary         string
	TopCategories   []CategorySpending
	Insights        []string
	Prediction      float64
	PredictionBasis string
	Recommendations []string
}
