package main

import (
	"fmt"
	"time"

	"github.com/quillback/scanledger/internal/analysis"
	"github.com/spf13/cobra"
)

func trendCmd() *cobra.Command {
	var timeframeFlag string

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show the spending trend over a timeframe",
		Long:  `Bucket saved receipts over a lookback window and report whether spending is increasing, decreasing, or stable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			timeframe := analysis.Timeframe(timeframeFlag)

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			// A year covers every supported lookback window.
			now := time.Now()
			receipts, err := store.ListReceipts(cmd.Context(), now.AddDate(-1, 0, 0), now)
			if err != nil {
				return fmt.Errorf("failed to list receipts: %w", err)
			}

			report, err := analysis.New().Trend(receipts, timeframe)
			if err != nil {
				return fmt.Errorf("failed to compute trend (valid timeframes: %v): %w",
					analysis.Timeframes(), err)
			}

			fmt.Println(analysis.NewFormatter().FormatTrend(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&timeframeFlag, "timeframe", string(analysis.TimeframeMonth),
		"lookback window: week, month, 3months, 6months, year")

	return cmd
}
