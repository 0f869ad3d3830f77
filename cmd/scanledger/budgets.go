package main

import (
	"fmt"
	"strconv"

	"github.com/quillback/scanledger/internal/analysis"
	"github.com/quillback/scanledger/internal/cli"
	"github.com/quillback/scanledger/internal/model"
	"github.com/spf13/cobra"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage monthly category budgets",
	}

	cmd.AddCommand(budgetsSetCmd())
	cmd.AddCommand(budgetsListCmd())
	cmd.AddCommand(budgetsStatusCmd())

	return cmd
}

func budgetsSetCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "set <category> <limit>",
		Short: "Set the monthly limit for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, ok := model.ParseCategory(args[0])
			if !ok {
				return fmt.Errorf("unknown category %q (valid: %v)", args[0], model.Categories())
			}

			limit, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", args[1], err)
			}

			month, err := parseMonth(monthFlag)
			if err != nil {
				return err
			}

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			budget := model.Budget{Category: category, Month: month, MonthlyLimit: limit}
			if err := store.UpsertBudget(cmd.Context(), budget); err != nil {
				return fmt.Errorf("failed to save budget: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Budget for %s set to %.2f for %s",
				category, limit, month.Format("January 2006"))))
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "budget month as YYYY-MM (default: current month)")
	return cmd
}

func budgetsListCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List budgets for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := parseMonth(monthFlag)
			if err != nil {
				return err
			}

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			budgets, err := store.ListBudgets(cmd.Context(), month)
			if err != nil {
				return fmt.Errorf("failed to list budgets: %w", err)
			}

			if len(budgets) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No budgets set. Use 'scanledger budgets set' to create one."))
				return nil
			}

			for _, b := range budgets {
				fmt.Printf("%-15s %10.2f\n", b.Category, b.MonthlyLimit)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "budget month as YYYY-MM (default: current month)")
	return cmd
}

func budgetsStatusCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show spending against each budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := parseMonth(monthFlag)
			if err != nil {
				return err
			}

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			budgets, err := store.ListBudgets(cmd.Context(), month)
			if err != nil {
				return fmt.Errorf("failed to list budgets: %w", err)
			}

			monthEnd := month.AddDate(0, 1, -1)
			receipts, err := store.ListReceipts(cmd.Context(), month, monthEnd)
			if err != nil {
				return fmt.Errorf("failed to list receipts: %w", err)
			}

			agg := analysis.New()
			statuses := make([]analysis.BudgetStatus, 0, len(budgets))
			for _, b := range budgets {
				status, err := agg.BudgetStatus(b, receipts)
				if err != nil {
					return fmt.Errorf("failed to compute budget status: %w", err)
				}
				statuses = append(statuses, status)
			}

			fmt.Println(analysis.NewFormatter().FormatBudgets(statuses))
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "budget month as YYYY-MM (default: current month)")
	return cmd
}
