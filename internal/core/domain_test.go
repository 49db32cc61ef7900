package core

import (
	"errors"
	"strings"
	"testing"
)

func TestTransactionTypeValidate(t *testing.T) {
	if err := Income.Validate(); err != nil {
		t.Errorf("income should be valid, got %v", err)
	}
	if err := Expense.Validate(); err != nil {
		t.Errorf("expense should be valid, got %v", err)
	}
	if err := TransactionType("transfer").Validate(); !errors.Is(err, ErrInvalidType) {
		t.Errorf("transfer should be ErrInvalidType, got %v", err)
	}
}

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		Amount:   MoneyFromCents(1200),
		Category: "Food & Dining",
		Date:     NewDate(2024, 1, 10),
		Type:     Expense,
	}

	tests := []struct {
		name    string
		mutate  func(tx *Transaction)
		wantErr error
	}{
		{name: "valid", mutate: func(*Transaction) {}},
		{name: "negative amount", mutate: func(tx *Transaction) { tx.Amount.Cents = -1 }, wantErr: ErrInvalidAmount},
		{name: "empty category", mutate: func(tx *Transaction) { tx.Category = "  " }, wantErr: ErrEmptyCategory},
		{name: "zero date", mutate: func(tx *Transaction) { tx.Date = Date{} }, wantErr: ErrInvalidDate},
		{name: "bad type", mutate: func(tx *Transaction) { tx.Type = "loan" }, wantErr: ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	long := valid
	long.Description = strings.Repeat("x", 201)
	if err := long.Validate(); err == nil {
		t.Error("over-long description should fail validation")
	}
}

func TestBudgetValidate(t *testing.T) {
	valid := Budget{Category: "Food & Dining", Amount: MoneyFromCents(50000), Month: 1, Year: 2024}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		budget  Budget
		wantErr error
	}{
		{name: "month zero", budget: Budget{Category: "a", Month: 0, Year: 2024}, wantErr: ErrInvalidMonth},
		{name: "month thirteen", budget: Budget{Category: "a", Month: 13, Year: 2024}, wantErr: ErrInvalidMonth},
		{name: "empty category", budget: Budget{Category: "", Month: 1, Year: 2024}, wantErr: ErrEmptyCategory},
		{name: "negative amount", budget: Budget{Category: "a", Amount: MoneyFromCents(-1), Month: 1, Year: 2024}, wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.budget.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultCategories(t *testing.T) {
	if len(DefaultCategories) != 14 {
		t.Fatalf("expected 14 default categories, got %d", len(DefaultCategories))
	}

	seen := make(map[string]bool)
	var income, expense int
	for _, c := range DefaultCategories {
		if seen[c.Name] {
			t.Errorf("duplicate default category %q", c.Name)
		}
		seen[c.Name] = true
		if c.Icon == "" {
			t.Errorf("category %q has no icon", c.Name)
		}
		switch c.Type {
		case Income:
			income++
		case Expense:
			expense++
		default:
			t.Errorf("category %q has invalid type %q", c.Name, c.Type)
		}
	}
	if expense != 9 || income != 5 {
		t.Errorf("expected 9 expense + 5 income categories, got %d + %d", expense, income)
	}
}
