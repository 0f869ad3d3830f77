package main

import (
	"fmt"
	"time"

	"github.com/quillback/scanledger/internal/analysis"
	"github.com/quillback/scanledger/internal/cli"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	var (
		fromFlag string
		toFlag   string
		insights bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show spending by category for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := reportPeriod(fromFlag, toFlag)
			if err != nil {
				return err
			}

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			receipts, err := store.ListReceipts(cmd.Context(), start, end)
			if err != nil {
				return fmt.Errorf("failed to list receipts: %w", err)
			}

			agg := analysis.New()
			formatter := analysis.NewFormatter()

			if insights {
				month := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.Local)
				budgets, err := store.ListBudgets(cmd.Context(), month)
				if err != nil {
					return fmt.Errorf("failed to list budgets: %w", err)
				}

				// Anomaly detection compares against the prior period, so
				// hand the aggregator a wider receipt snapshot.
				history, err := store.ListReceipts(cmd.Context(), start.AddDate(-1, 0, 0), end)
				if err != nil {
					return fmt.Errorf("failed to list receipt history: %w", err)
				}

				snapshot, err := agg.BuildInsights(history, budgets, start, end)
				if err != nil {
					return fmt.Errorf("failed to build insights: %w", err)
				}
				fmt.Println(formatter.FormatInsights(snapshot))
				return nil
			}

			totals, err := agg.SpendingByCategory(receipts, start, end)
			if err != nil {
				return fmt.Errorf("failed to aggregate spending: %w", err)
			}

			var overall float64
			for _, total := range totals {
				overall += total
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Spending %s to %s",
				start.Format("2006-01-02"), end.Format("2006-01-02"))))
			fmt.Println(formatter.FormatSpending(analysis.RankCategories(totals, overall)))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "period start as YYYY-MM-DD (default: first of current month)")
	cmd.Flags().StringVar(&toFlag, "to", "", "period end as YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&insights, "insights", false, "include anomalies, prediction, and recommendations")

	return cmd
}

func reportPeriod(fromFlag, toFlag string) (start, end time.Time, err error) {
	now := time.Now()
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	end = now

	if fromFlag != "" {
		if start, err = parseDay(fromFlag); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if toFlag != "" {
		if end, err = parseDay(toFlag); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}
