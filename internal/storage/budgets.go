package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/quillback/scanledger/internal/model"
)

// budgetMonthLayout keys budgets by calendar month.
const budgetMonthLayout = "2006-01"

// UpsertBudget creates or replaces the budget for its category and month.
// The unique index on (category, month) enforces at most one budget per
// category at a time.
func (s *SQLiteStore) UpsertBudget(ctx context.Context, budget model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBudget(budget); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (category, month, monthly_limit, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(category, month) DO UPDATE SET
			monthly_limit = excluded.monthly_limit,
			updated_at = CURRENT_TIMESTAMP
	`, string(budget.Category), budget.Month.Format(budgetMonthLayout), budget.MonthlyLimit)
	if err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}
	return nil
}

// ListBudgets returns the budgets for the given calendar month.
func (s *SQLiteStore) ListBudgets(ctx context.Context, month time.Time) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, month, monthly_limit
		FROM budgets
		WHERE month = ?
		ORDER BY category
	`, month.Format(budgetMonthLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		var (
			category string
			monthKey string
			limit    float64
		)
		if err := rows.Scan(&category, &monthKey, &limit); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		anchor, err := time.ParseInLocation(budgetMonthLayout, monthKey, time.Local)
		if err != nil {
			return nil, fmt.Errorf("failed to parse budget month %q: %w", monthKey, err)
		}
		budgets = append(budgets, model.Budget{
			Category:     model.Category(category),
			Month:        anchor,
			MonthlyLimit: limit,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}
	return budgets, nil
}
