package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"budgetplanner/internal/core"
	"budgetplanner/internal/log"
)

// SetBudget inserts or replaces the budget for (category, month, year).
// Repeating the same call is idempotent; a different amount for the same key
// replaces the existing row rather than adding one.
func (s *Store) SetBudget(ctx context.Context, b core.Budget) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO budgets (category, amount_cents, month, year)
		 VALUES (?, ?, ?, ?)`,
		b.Category, b.Amount.Cents, b.Month, b.Year)
	if err != nil {
		return fmt.Errorf("set budget for %q %d-%02d: %w", b.Category, b.Year, b.Month, err)
	}

	logger(ctx).InfoContext(ctx, "Budget set",
		log.FieldCategory, b.Category,
		log.FieldAmountCents, b.Amount.Cents,
		log.FieldMonth, b.Month,
		log.FieldYear, b.Year)
	return nil
}

// Budget returns the budget for one category in one month, or
// core.ErrBudgetNotFound when none is set.
func (s *Store) Budget(ctx context.Context, category string, month, year int) (core.Budget, error) {
	b := core.Budget{Category: category, Month: month, Year: year}
	err := s.db.QueryRowContext(ctx,
		`SELECT amount_cents FROM budgets WHERE category = ? AND month = ? AND year = ?`,
		category, month, year).Scan(&b.Amount.Cents)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Budget{}, fmt.Errorf("budget for %q %d-%02d: %w", category, year, month, core.ErrBudgetNotFound)
	}
	if err != nil {
		return core.Budget{}, fmt.Errorf("query budget for %q %d-%02d: %w", category, year, month, err)
	}
	return b, nil
}

// BudgetsForMonth returns all budgets set for the given month and year.
func (s *Store) BudgetsForMonth(ctx context.Context, month, year int) ([]core.Budget, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, amount_cents FROM budgets WHERE month = ? AND year = ?`,
		month, year)
	if err != nil {
		return nil, fmt.Errorf("query budgets for %d-%02d: %w", year, month, err)
	}
	defer rows.Close()

	var budgets []core.Budget
	for rows.Next() {
		b := core.Budget{Month: month, Year: year}
		if err := rows.Scan(&b.Category, &b.Amount.Cents); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}
