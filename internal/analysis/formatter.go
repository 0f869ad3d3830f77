package analysis

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/quillback/scanledger/internal/cli"
)

// Formatter renders analysis output for terminal display.
type Formatter struct{}

// NewFormatter creates a Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// FormatSpending renders a ranked category breakdown as a table.
func (f *Formatter) FormatSpending(ranked []CategorySpending) string {
	if len(ranked) == 0 {
		return cli.SubtleStyle.Render("No spending recorded for this period.")
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Category", "Total", "Share"})
	for _, entry := range ranked {
		t.AppendRow(table.Row{
			string(entry.Category),
			fmt.Sprintf("%.2f", entry.Total),
			fmt.Sprintf("%.1f%%", entry.Percentage),
		})
	}
	return t.Render()
}

// FormatBudgets renders budget statuses, highlighting over-budget rows.
func (f *Formatter) FormatBudgets(statuses []BudgetStatus) string {
	if len(statuses) == 0 {
		return cli.SubtleStyle.Render("No budgets configured for this month.")
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Category", "Limit", "Spent", "Remaining", "Used"})
	for _, s := range statuses {
		remaining := fmt.Sprintf("%.2f", s.Remaining)
		if s.OverBudget {
			remaining = cli.ErrorStyle.Render(remaining)
		}
		t.AppendRow(table.Row{
			string(s.Budget.Category),
			fmt.Sprintf("%.2f", s.Budget.MonthlyLimit),
			fmt.Sprintf("%.2f", s.Spent),
			remaining,
			fmt.Sprintf("%.0f%%", s.PercentageUsed),
		})
	}
	return t.Render()
}

// FormatTrend renders the trend headline and bucket series.
func (f *Formatter) FormatTrend(report TrendReport) string {
	var sections []string

	headline := fmt.Sprintf("Spending is %s (%.1f%% change over the %s timeframe)",
		report.Direction, report.ChangePercent, report.Timeframe)
	switch report.Direction {
	case TrendIncreasing:
		headline = cli.WarningStyle.Render(headline)
	case TrendDecreasing:
		headline = cli.SuccessStyle.Render(headline)
	default:
		headline = cli.SubtleStyle.Render(headline)
	}
	sections = append(sections, headline)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Period", "Total"})
	for _, p := range report.Points {
		t.AppendRow(table.Row{
			p.PeriodStart.Format("2006-01-02"),
			fmt.Sprintf("%.2f", p.Total),
		})
	}
	sections = append(sections, t.Render())

	return strings.Join(sections, "\n\n")
}

// FormatInsights renders the full spending snapshot.
func (f *Formatter) FormatInsights(insights SpendingInsights) string {
	var sections []string

	sections = append(sections, cli.TitleStyle.Render("Spending Insights"))
	sections = append(sections, insights.Summary)
	sections = append(sections, f.FormatSpending(insights.TopCategories))

	if len(insights.Insights) > 0 {
		lines := make([]string, 0, len(insights.Insights))
		for _, note := range insights.Insights {
			lines = append(lines, cli.WarningStyle.Render("! ")+note)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if insights.Prediction > 0 {
		sections = append(sections, fmt.Sprintf("Next period projection: %.2f (%s)",
			insights.Prediction, insights.PredictionBasis))
	}

	for _, rec := range insights.Recommendations {
		sections = append(sections, cli.ErrorStyle.Render("> ")+rec)
	}

	return strings.Join(sections, "\n\n")
}
