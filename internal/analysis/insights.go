package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/quillback/scanledger/internal/model"
)

// anomalyThresholdPercent flags a category whose spending rose this much
// over the prior period of equal length.
const anomalyThresholdPercent = 50.0

// BuildInsights assembles the deterministic spending snapshot for
// [start, end]: ranked categories, anomaly records against the prior
// period, a next-period prediction, and budget-driven recommendations.
// Any natural-language summarization happens outside this package.
func (a *Aggregator) BuildInsights(receipts []model.Receipt, budgets []model.Budget, start, end time.Time) (SpendingInsights, error) {
	totals, err := a.SpendingByCategory(receipts, start, end)
	if err != nil {
		return SpendingInsights{}, err
	}

	insights := SpendingInsights{
		GeneratedAt: a.now(),
		PeriodStart: start,
		PeriodEnd:   end,
	}

	var overall float64
	for _, total := range totals {
		overall += total
	}

	insights.TopCategories = RankCategories(totals, overall)
	insights.Summary = fmt.Sprintf("Spent %.2f across %d categories between %s and %s.",
		overall, len(insights.TopCategories),
		start.Format("2006-01-02"), end.Format("2006-01-02"))

	insights.Insights = a.anomalies(receipts, totals, start, end)

	insights.Prediction, insights.PredictionBasis = a.predictNextPeriod(receipts)

	recommendations, err := a.recommendations(budgets, receipts)
	if err != nil {
		return SpendingInsights{}, err
	}
	insights.Recommendations = recommendations

	return insights, nil
}

// RankCategories orders categories by total descending; ties break on the
// fixed display order so output stays reproducible.
func RankCategories(totals map[model.Category]float64, overall float64) []CategorySpending {
	ranked := make([]CategorySpending, 0, len(totals))
	for _, c := range model.Categories() {
		total, ok := totals[c]
		if !ok {
			continue
		}
		entry := CategorySpending{Category: c, Total: total}
		if overall > 0 {
			entry.Percentage = 100 * total / overall
		}
		ranked = append(ranked, entry)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})
	return ranked
}

// anomalies compares each category against the prior period of equal
// length and records sharp increases.
func (a *Aggregator) anomalies(receipts []model.Receipt, totals map[model.Category]float64, start, end time.Time) []string {
	length := dayOf(end).Sub(dayOf(start))
	priorStart := start.Add(-length - 24*time.Hour)
	priorEnd := start.AddDate(0, 0, -1)

	prior, err := a.SpendingByCategory(receipts, priorStart, priorEnd)
	if err != nil {
		return nil
	}

	var notes []string
	for _, c := range model.Categories() {
		current, previous := totals[c], prior[c]
		if previous <= 0 || current <= previous {
			continue
		}
		change := 100 * (current - previous) / previous
		if change > anomalyThresholdPercent {
			notes = append(notes, fmt.Sprintf("%s spending rose %.0f%% over the prior period (%.2f from %.2f).",
				c, change, current, previous))
		}
	}
	return notes
}

// predictNextPeriod projects the next period's spending as the mean of the
// non-empty monthly buckets over the last three months.
func (a *Aggregator) predictNextPeriod(receipts []model.Receipt) (float64, string) {
	report, err := a.Trend(receipts, TimeframeThreeMonths)
	if err != nil {
		return 0, "no trend data available"
	}

	var sum float64
	var count int
	for _, p := range report.Points {
		if p.Total == 0 {
			continue
		}
		sum += p.Total
		count++
	}
	if count == 0 {
		return 0, "no spending recorded in the last three months"
	}
	return sum / float64(count), fmt.Sprintf("mean of %d non-empty monthly buckets over the last three months", count)
}

// recommendations flags budgets the receipt snapshot puts over or near
// their limit.
func (a *Aggregator) recommendations(budgets []model.Budget, receipts []model.Receipt) ([]string, error) {
	var recs []string
	for _, b := range budgets {
		status, err := a.BudgetStatus(b, receipts)
		if err != nil {
			return nil, err
		}
		switch {
		case status.OverBudget:
			recs = append(recs, fmt.Sprintf("%s is over budget by %.2f this month.", b.Category, -status.Remaining))
		case status.PercentageUsed >= 90:
			recs = append(recs, fmt.Sprintf("%s has used %.0f%% of its monthly limit.", b.Category, status.PercentageUsed))
		}
	}
	return recs, nil
}
