package storage

import (
	"context"
	"testing"

	"budgetplanner/internal/core"
)

func TestAddAndListTransactions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	ids := []int64{
		mustAdd(t, s, core.Transaction{Amount: core.MoneyFromCents(5000000), Category: "Salary", Description: "January salary", Date: core.NewDate(2024, 1, 5), Type: core.Income}),
		mustAdd(t, s, core.Transaction{Amount: core.MoneyFromCents(120000), Category: "Food & Dining", Date: core.NewDate(2024, 1, 10), Type: core.Expense}),
		mustAdd(t, s, core.Transaction{Amount: core.MoneyFromCents(30000), Category: "Transportation", Date: core.NewDate(2024, 2, 1), Type: core.Expense}),
	}
	if ids[0] == ids[1] || ids[1] == ids[2] {
		t.Fatalf("ids should be unique: %v", ids)
	}

	txs, err := s.Transactions(ctx, TransactionFilter{})
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txs))
	}
	// Ordered by date descending.
	for i := 1; i < len(txs); i++ {
		if txs[i-1].Date.Before(txs[i].Date.Time) {
			t.Errorf("transactions out of order: %s before %s", txs[i-1].Date, txs[i].Date)
		}
	}
	if txs[0].Category != "Transportation" {
		t.Errorf("newest transaction first, got %q", txs[0].Category)
	}

	// Round trip of every field.
	last := txs[1] // 2024-01-10 expense
	if last.Amount.Cents != 120000 || last.Category != "Food & Dining" || last.Type != core.Expense {
		t.Errorf("unexpected round trip: %+v", last)
	}
	if txs[2].Description != "January salary" {
		t.Errorf("description lost: %+v", txs[2])
	}
}

func TestTransactionFilters(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	mustAdd(t, s, core.Transaction{Amount: core.MoneyFromCents(5000000), Category: "Salary", Date: core.NewDate(2024, 1, 5), Type: core.Income})
	mustAdd(t, s, core.Transaction{Amount: core.MoneyFromCents(120000), Category: "Food & Dining", Date: core.NewDate(2024, 1, 10), Type: core.Expense})
	mustAdd(t, s, core.Transaction{Amount: core.MoneyFromCents(99900), Category: "Food & Dining", Date: core.NewDate(2024, 1, 31), Type: core.Expense})
	mustAdd(t, s, core.Transaction{Amount: core.MoneyFromCents(30000), Category: "Transportation", Date: core.NewDate(2024, 2, 1), Type: core.Expense})

	tests := []struct {
		name   string
		filter TransactionFilter
		want   int
	}{
		{name: "no filters", filter: TransactionFilter{}, want: 4},
		{
			name:   "inclusive january range",
			filter: TransactionFilter{StartDate: core.NewDate(2024, 1, 1), EndDate: core.NewDate(2024, 1, 31)},
			want:   3,
		},
		{
			name:   "range endpoints are inclusive",
			filter: TransactionFilter{StartDate: core.NewDate(2024, 1, 10), EndDate: core.NewDate(2024, 1, 31)},
			want:   2,
		},
		{name: "type only", filter: TransactionFilter{Type: core.Expense}, want: 3},
		{name: "category only", filter: TransactionFilter{Category: "Food & Dining"}, want: 2},
		{
			name: "conjunction of all filters",
			filter: TransactionFilter{
				StartDate: core.NewDate(2024, 1, 1),
				EndDate:   core.NewDate(2024, 1, 31),
				Type:      core.Expense,
				Category:  "Food & Dining",
			},
			want: 2,
		},
		{
			name:   "nothing matches is empty not error",
			filter: TransactionFilter{StartDate: core.NewDate(2030, 1, 1), EndDate: core.NewDate(2030, 12, 31)},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs, err := s.Transactions(ctx, tt.filter)
			if err != nil {
				t.Fatalf("transactions: %v", err)
			}
			if len(txs) != tt.want {
				t.Errorf("got %d transactions, want %d", len(txs), tt.want)
			}
		})
	}
}

func TestJanuaryScenario(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	mustAdd(t, s, core.Transaction{Amount: core.MoneyFromCents(5000000), Category: "Salary", Date: core.NewDate(2024, 1, 5), Type: core.Income})
	mustAdd(t, s, core.Transaction{Amount: core.MoneyFromCents(120000), Category: "Food & Dining", Date: core.NewDate(2024, 1, 10), Type: core.Expense})

	txs, err := s.Transactions(ctx, TransactionFilter{
		StartDate: core.NewDate(2024, 1, 1),
		EndDate:   core.NewDate(2024, 1, 31),
	})
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected both rows in January range, got %d", len(txs))
	}

	sum := core.Summarize(txs)
	if sum.Income.Cents != 5000000 {
		t.Errorf("total income = %d, want 5000000", sum.Income.Cents)
	}
	if sum.Expenses.Cents != 120000 {
		t.Errorf("total expenses = %d, want 120000", sum.Expenses.Cents)
	}
	if sum.Savings.Cents != 4880000 {
		t.Errorf("savings = %d, want 4880000", sum.Savings.Cents)
	}
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	id := mustAdd(t, s, core.Transaction{Amount: core.MoneyFromCents(100), Category: "Other", Date: core.NewDate(2024, 1, 1), Type: core.Expense})
	keep := mustAdd(t, s, core.Transaction{Amount: core.MoneyFromCents(200), Category: "Other", Date: core.NewDate(2024, 1, 2), Type: core.Expense})

	deleted, err := s.DeleteTransaction(ctx, id)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Error("delete of existing id should report true")
	}

	txs, err := s.Transactions(ctx, TransactionFilter{})
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if len(txs) != 1 || txs[0].ID != keep {
		t.Errorf("exactly the deleted row should be gone, got %+v", txs)
	}

	// Repeating the delete is a no-op, not an error.
	deleted, err = s.DeleteTransaction(ctx, id)
	if err != nil {
		t.Fatalf("repeated delete should not error: %v", err)
	}
	if deleted {
		t.Error("repeated delete should report false")
	}
}

func TestSpendingByCategory(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	mustAdd(t, s, core.Transaction{Amount: core.MoneyFromCents(7000), Category: "Food & Dining", Date: core.NewDate(2024, 1, 3), Type: core.Expense})
	mustAdd(t, s, core.Transaction{Amount: core.MoneyFromCents(5000), Category: "Food & Dining", Date: core.NewDate(2024, 1, 20), Type: core.Expense})
	mustAdd(t, s, core.Transaction{Amount: core.MoneyFromCents(9000), Category: "Shopping", Date: core.NewDate(2024, 1, 15), Type: core.Expense})
	// Income and out-of-range expenses must not count.
	mustAdd(t, s, core.Transaction{Amount: core.MoneyFromCents(100000), Category: "Salary", Date: core.NewDate(2024, 1, 5), Type: core.Income})
	mustAdd(t, s, core.Transaction{Amount: core.MoneyFromCents(4000), Category: "Shopping", Date: core.NewDate(2024, 2, 1), Type: core.Expense})

	start, end := core.NewDate(2024, 1, 1), core.NewDate(2024, 1, 31)
	spending, err := s.SpendingByCategory(ctx, start, end)
	if err != nil {
		t.Fatalf("spending by category: %v", err)
	}

	if len(spending) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(spending))
	}
	// Ordered by total descending: Food & Dining 12000 then Shopping 9000.
	if spending[0].Category != "Food & Dining" || spending[0].Total.Cents != 12000 {
		t.Errorf("unexpected first row: %+v", spending[0])
	}
	if spending[1].Category != "Shopping" || spending[1].Total.Cents != 9000 {
		t.Errorf("unexpected second row: %+v", spending[1])
	}

	// Property: the per-category totals sum to the total of all in-range
	// expense transactions.
	var sumByCategory int64
	for _, cs := range spending {
		sumByCategory += cs.Total.Cents
	}
	txs, err := s.Transactions(ctx, TransactionFilter{StartDate: start, EndDate: end, Type: core.Expense})
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	var sumDirect int64
	for _, tx := range txs {
		sumDirect += tx.Amount.Cents
	}
	if sumByCategory != sumDirect {
		t.Errorf("aggregation mismatch: by-category %d, direct %d", sumByCategory, sumDirect)
	}
}
