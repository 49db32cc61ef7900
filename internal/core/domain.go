package core

import (
	"errors"
	"strings"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	// TransactionType carries the direction of a money movement. Amounts are
	// always non-negative; the sign lives here.
	TransactionType string

	// Category is a named bucket used to classify transactions and budgets.
	// Name and icon are separate fields from the start; callers never parse
	// a decorated label back apart.
	Category struct {
		Name string
		Type TransactionType
		Icon string
	}

	// Transaction is a single recorded money movement. Category references a
	// Category by name without a foreign key.
	Transaction struct {
		ID          int64
		Amount      Money
		Category    string
		Description string
		Date        Date
		Type        TransactionType
	}

	// Budget is a planned spending ceiling for one category in one calendar
	// month. (Category, Month, Year) identifies at most one budget.
	Budget struct {
		Category string
		Amount   Money
		Month    int
		Year     int
	}

	// CategorySpend is one row of the expense-by-category aggregation.
	CategorySpend struct {
		Category string
		Total    Money
	}
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidType       = errors.New("invalid transaction type")
	ErrInvalidMonth      = errors.New("invalid month")
	ErrEmptyCategory     = errors.New("empty category")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrBudgetNotFound    = errors.New("budget not found")
)

func (t TransactionType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidType
	}
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCategory
	}
	if len(c.Name) > 100 {
		return errors.New("category name too long (max 100 characters)")
	}
	return c.Type.Validate()
}

func (t Transaction) Validate() error {
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	return t.Type.Validate()
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return ErrEmptyCategory
	}
	if err := b.Amount.Validate(); err != nil {
		return err
	}
	if b.Month < 1 || b.Month > 12 {
		return ErrInvalidMonth
	}
	if b.Year < 1 {
		return errors.New("invalid year")
	}
	return nil
}

// DefaultCategories is the seed set inserted once at first initialization.
// Existing rows with the same name are left untouched on later runs.
var DefaultCategories = []Category{
	{Name: "Food & Dining", Type: Expense, Icon: "🍔"},
	{Name: "Transportation", Type: Expense, Icon: "🚗"},
	{Name: "Housing & Rent", Type: Expense, Icon: "🏠"},
	{Name: "Utilities", Type: Expense, Icon: "💡"},
	{Name: "Entertainment", Type: Expense, Icon: "🎬"},
	{Name: "Shopping", Type: Expense, Icon: "🛒"},
	{Name: "Healthcare", Type: Expense, Icon: "🏥"},
	{Name: "Education", Type: Expense, Icon: "📚"},
	{Name: "Other", Type: Expense, Icon: "📌"},
	{Name: "Salary", Type: Income, Icon: "💰"},
	{Name: "Freelance", Type: Income, Icon: "💼"},
	{Name: "Investment", Type: Income, Icon: "📈"},
	{Name: "Gift", Type: Income, Icon: "🎁"},
	{Name: "Other Income", Type: Income, Icon: "💵"},
}
