package storage

import (
	"context"
	"path/filepath"
	"testing"

	"budgetplanner/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return s
}

func mustAdd(t *testing.T, s *Store, tx core.Transaction) int64 {
	t.Helper()
	id, err := s.AddTransaction(context.Background(), tx)
	if err != nil {
		t.Fatalf("add transaction: %v", err)
	}
	return id
}

func TestOpenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	mustAdd(t, s1, core.Transaction{
		Amount:   core.MoneyFromCents(100),
		Category: "Other",
		Date:     core.NewDate(2024, 1, 1),
		Type:     core.Expense,
	})
	if err := s1.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopening must not error, must not duplicate the seed and must keep
	// existing data.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s2.Close()

	cats, err := s2.Categories(ctx, "")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(cats) != len(core.DefaultCategories) {
		t.Errorf("expected %d categories after reopen, got %d", len(core.DefaultCategories), len(cats))
	}

	txs, err := s2.Transactions(ctx, TransactionFilter{})
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if len(txs) != 1 {
		t.Errorf("expected 1 transaction after reopen, got %d", len(txs))
	}
}

func TestClearAllData(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	mustAdd(t, s, core.Transaction{
		Amount:   core.MoneyFromCents(1000),
		Category: "Shopping",
		Date:     core.NewDate(2024, 3, 1),
		Type:     core.Expense,
	})
	if err := s.SetBudget(ctx, core.Budget{Category: "Shopping", Amount: core.MoneyFromCents(5000), Month: 3, Year: 2024}); err != nil {
		t.Fatalf("set budget: %v", err)
	}

	catsBefore, err := s.Categories(ctx, "")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}

	if err := s.ClearAllData(ctx); err != nil {
		t.Fatalf("clear all data: %v", err)
	}

	txs, err := s.Transactions(ctx, TransactionFilter{})
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if len(txs) != 0 {
		t.Errorf("transactions should be empty after clear, got %d", len(txs))
	}

	budgets, err := s.BudgetsForMonth(ctx, 3, 2024)
	if err != nil {
		t.Fatalf("budgets: %v", err)
	}
	if len(budgets) != 0 {
		t.Errorf("budgets should be empty after clear, got %d", len(budgets))
	}

	catsAfter, err := s.Categories(ctx, "")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(catsAfter) != len(catsBefore) {
		t.Errorf("categories changed by clear: %d -> %d", len(catsBefore), len(catsAfter))
	}
}
