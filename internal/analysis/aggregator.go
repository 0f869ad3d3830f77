package analysis

import (
	"fmt"
	"time"

	"github.com/quillback/scanledger/internal/common"
	"github.com/quillback/scanledger/internal/model"
)

// trendDeadZonePercent is the band around zero change inside which the
// trend is reported as stable.
const trendDeadZonePercent = 2.0

// Aggregator rolls receipts and budgets up into spending summaries. It
// takes snapshot views of its inputs and never mutates them, so it is safe
// to call concurrently on different inputs.
type Aggregator struct {
	now func() time.Time
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithNow overrides the clock anchoring trend lookback windows.
func WithNow(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

// New creates an Aggregator.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SpendingByCategory sums receipt totals per category over [start, end]
// inclusive, compared at day granularity. An empty receipt collection is a
// legitimate zero result, not an error.
func (a *Aggregator) SpendingByCategory(receipts []model.Receipt, start, end time.Time) (map[model.Category]float64, error) {
	if dayOf(end).Before(dayOf(start)) {
		return nil, fmt.Errorf("%w: start %s, end %s", common.ErrInvalidPeriod,
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	totals := make(map[model.Category]float64)
	for _, r := range receipts {
		if !inPeriod(r.Date, start, end) {
			continue
		}
		totals[r.Category] += r.Total
	}
	return totals, nil
}

// BudgetStatus recomputes a budget's standing from the receipt snapshot.
// The budget's CurrentSpending field is ignored; it is a cache, never a
// source of truth. A zero monthly limit reports 0% used.
func (a *Aggregator) BudgetStatus(budget model.Budget, receipts []model.Receipt) (BudgetStatus, error) {
	if budget.MonthlyLimit < 0 {
		return BudgetStatus{}, fmt.Errorf("%w: %.2f", common.ErrNegativeLimit, budget.MonthlyLimit)
	}
	if !budget.Category.Valid() {
		return BudgetStatus{}, fmt.Errorf("%w: %q", common.ErrUnknownCategory, budget.Category)
	}

	totals, err := a.SpendingByCategory(receipts, budget.MonthStart(), budget.MonthEnd())
	if err != nil {
		return BudgetStatus{}, err
	}
	spent := totals[budget.Category]

	status := BudgetStatus{
		Budget:     budget,
		Spent:      spent,
		Remaining:  budget.MonthlyLimit - spent,
		OverBudget: spent > budget.MonthlyLimit,
	}
	if budget.MonthlyLimit > 0 {
		status.PercentageUsed = 100 * spent / budget.MonthlyLimit
	}
	return status, nil
}

// Trend buckets receipts over the timeframe's lookback window, anchored at
// now, and reports the percentage change between the first and last
// non-empty buckets.
func (a *Aggregator) Trend(receipts []model.Receipt, timeframe Timeframe) (TrendReport, error) {
	now := a.now()

	start, weekly, err := lookback(timeframe, now)
	if err != nil {
		return TrendReport{}, err
	}

	points := bucketTotals(receipts, start, now, weekly)

	report := TrendReport{
		GeneratedAt: now,
		Timeframe:   timeframe,
		Direction:   TrendStable,
		Points:      points,
	}

	first, last, ok := firstLastNonEmpty(points)
	if !ok || first.Total == 0 {
		return report, nil
	}

	report.ChangePercent = 100 * (last.Total - first.Total) / first.Total
	switch {
	case report.ChangePercent > trendDeadZonePercent:
		report.Direction = TrendIncreasing
	case report.ChangePercent < -trendDeadZonePercent:
		report.Direction = TrendDecreasing
	}
	return report, nil
}

// lookback maps a timeframe to its window start and bucket granularity.
func lookback(timeframe Timeframe, now time.Time) (start time.Time, weekly bool, err error) {
	switch timeframe {
	case TimeframeWeek:
		return now.AddDate(0, 0, -7), true, nil
	case TimeframeMonth:
		return now.AddDate(0, -1, 0), false, nil
	case TimeframeThreeMonths:
		return now.AddDate(0, -3, 0), false, nil
	case TimeframeSixMonths:
		return now.AddDate(0, -6, 0), false, nil
	case TimeframeYear:
		return now.AddDate(-1, 0, 0), false, nil
	default:
		return time.Time{}, false, fmt.Errorf("%w: %q", common.ErrUnknownTimeframe, timeframe)
	}
}

// bucketTotals builds the full bucket series across [start, end], zeros
// included, and sums receipt totals into it.
func bucketTotals(receipts []model.Receipt, start, end time.Time, weekly bool) []TrendPoint {
	keyOf := monthStart
	next := nextMonth
	if weekly {
		keyOf = weekStart
		next = nextWeek
	}

	var keys []time.Time
	totals := make(map[time.Time]float64)
	for k := keyOf(start); !k.After(end); k = next(k) {
		keys = append(keys, k)
		totals[k] = 0
	}

	for _, r := range receipts {
		if !inPeriod(r.Date, start, end) {
			continue
		}
		totals[keyOf(r.Date)] += r.Total
	}

	points := make([]TrendPoint, 0, len(keys))
	for _, k := range keys {
		points = append(points, TrendPoint{PeriodStart: k, Total: totals[k]})
	}
	return points
}

func firstLastNonEmpty(points []TrendPoint) (first, last TrendPoint, ok bool) {
	for _, p := range points {
		if p.Total == 0 {
			continue
		}
		if !ok {
			first = p
			ok = true
		}
		last = p
	}
	return first, last, ok
}

// inPeriod reports whether date falls within [start, end] inclusive at day
// granularity.
func inPeriod(date, start, end time.Time) bool {
	d := dayOf(date)
	return !d.Before(dayOf(start)) && !d.After(dayOf(end))
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func nextMonth(t time.Time) time.Time {
	return t.AddDate(0, 1, 0)
}

// weekStart returns the Monday of t's week at day granularity.
func weekStart(t time.Time) time.Time {
	d := dayOf(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func nextWeek(t time.Time) time.Time {
	return t.AddDate(0, 0, 7)
}
