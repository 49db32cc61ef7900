package core

// Summary aggregates a set of transactions into the dashboard headline
// numbers.
type Summary struct {
	Income   Money
	Expenses Money
	Savings  Money
	// SavingsRate is (income - expenses) / income as a percentage, 0 when
	// there is no income.
	SavingsRate float64
}

// Summarize computes totals over a transaction slice. Amounts are summed by
// type; savings may be negative.
func Summarize(txs []Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		switch tx.Type {
		case Income:
			s.Income = s.Income.Add(tx.Amount)
		case Expense:
			s.Expenses = s.Expenses.Add(tx.Amount)
		}
	}
	s.Savings = s.Income.Sub(s.Expenses)
	if s.Income.Cents > 0 {
		s.SavingsRate = float64(s.Savings.Cents) / float64(s.Income.Cents) * 100
	}
	return s
}

// BudgetStatus pairs a monthly budget with what was actually spent in that
// category.
type BudgetStatus struct {
	Category string
	Budget   Money
	Spent    Money
}

// Remaining returns how much of the budget is left; negative when over.
func (bs BudgetStatus) Remaining() Money {
	return bs.Budget.Sub(bs.Spent)
}

// UsedPercent returns spent/budget as a percentage capped at 100 for
// progress rendering, or 0 for a zero budget.
func (bs BudgetStatus) UsedPercent() int {
	if bs.Budget.Cents <= 0 {
		return 0
	}
	pct := int((bs.Spent.Cents*100 + bs.Budget.Cents/2) / bs.Budget.Cents)
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Over reports whether spending exceeded the budget.
func (bs BudgetStatus) Over() bool {
	return bs.Spent.Cents > bs.Budget.Cents
}

// CompareBudgets joins budgets with per-category spending. Every budget
// produces a row; spending in categories without a budget is ignored here
// (the spending table renders those separately).
func CompareBudgets(budgets []Budget, spending []CategorySpend) []BudgetStatus {
	spent := make(map[string]Money, len(spending))
	for _, cs := range spending {
		spent[cs.Category] = cs.Total
	}
	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		statuses = append(statuses, BudgetStatus{
			Category: b.Category,
			Budget:   b.Amount,
			Spent:    spent[b.Category],
		})
	}
	return statuses
}
