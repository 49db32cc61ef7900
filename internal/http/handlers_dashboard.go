package http

import (
	"fmt"
	"net/http"

	"budgetplanner/internal/core"
	"budgetplanner/internal/storage"
)

type spendRow struct {
	Category string
	Total    string
	// Width is the bar width relative to the largest category, in percent.
	Width int
}

type budgetRow struct {
	Category  string
	Budget    string
	Spent     string
	Remaining string
	Percent   int
	Over      bool
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start, end, period := dateRange(r)

	txs, err := s.store.Transactions(ctx, storage.TransactionFilter{StartDate: start, EndDate: end})
	if err != nil {
		s.logger.ErrorContext(ctx, "Dashboard transactions query failed", "error", err)
		http.Error(w, "failed to load transactions", http.StatusInternalServerError)
		return
	}
	summary := core.Summarize(txs)

	spending, err := s.store.SpendingByCategory(ctx, start, end)
	if err != nil {
		s.logger.ErrorContext(ctx, "Spending query failed", "error", err)
		http.Error(w, "failed to load spending", http.StatusInternalServerError)
		return
	}

	// Budget progress tracks the month the range starts in.
	month, year := int(start.Time.Month()), start.Year()
	budgets, err := s.store.BudgetsForMonth(ctx, month, year)
	if err != nil {
		s.logger.ErrorContext(ctx, "Budgets query failed", "error", err)
		http.Error(w, "failed to load budgets", http.StatusInternalServerError)
		return
	}
	monthStart, monthEnd := core.MonthRange(year, month)
	monthSpending, err := s.store.SpendingByCategory(ctx, monthStart, monthEnd)
	if err != nil {
		s.logger.ErrorContext(ctx, "Month spending query failed", "error", err)
		http.Error(w, "failed to load spending", http.StatusInternalServerError)
		return
	}

	var maxCents int64
	for _, cs := range spending {
		if cs.Total.Cents > maxCents {
			maxCents = cs.Total.Cents
		}
	}
	rows := make([]spendRow, 0, len(spending))
	for _, cs := range spending {
		width := 0
		if maxCents > 0 && cs.Total.Cents > 0 {
			width = int((cs.Total.Cents*100 + maxCents/2) / maxCents)
			if width < 2 {
				width = 2
			}
			if width > 100 {
				width = 100
			}
		}
		rows = append(rows, spendRow{Category: cs.Category, Total: cs.Total.String(), Width: width})
	}

	statuses := core.CompareBudgets(budgets, monthSpending)
	budgetRows := make([]budgetRow, 0, len(statuses))
	for _, bs := range statuses {
		budgetRows = append(budgetRows, budgetRow{
			Category:  bs.Category,
			Budget:    bs.Budget.String(),
			Spent:     bs.Spent.String(),
			Remaining: bs.Remaining().String(),
			Percent:   bs.UsedPercent(),
			Over:      bs.Over(),
		})
	}

	msg, errMsg := flash(r)
	s.render(w, r, "dashboard.html", struct {
		Active      string
		Msg, Err    string
		Period      string
		Start, End  string
		Income      string
		Expenses    string
		Savings     string
		SavingsRate string
		Spending    []spendRow
		Budgets     []budgetRow
		Month       int
		Year        int
	}{
		Active:      "dashboard",
		Msg:         msg,
		Err:         errMsg,
		Period:      period,
		Start:       start.String(),
		End:         end.String(),
		Income:      summary.Income.String(),
		Expenses:    summary.Expenses.String(),
		Savings:     summary.Savings.String(),
		SavingsRate: fmt.Sprintf("%.1f%%", summary.SavingsRate),
		Spending:    rows,
		Budgets:     budgetRows,
		Month:       month,
		Year:        year,
	})
}

// handleAPISummary serves the headline numbers for the selected range.
func (s *Server) handleAPISummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start, end, _ := dateRange(r)

	txs, err := s.store.Transactions(ctx, storage.TransactionFilter{StartDate: start, EndDate: end})
	if err != nil {
		s.logger.ErrorContext(ctx, "Summary query failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load summary"})
		return
	}
	summary := core.Summarize(txs)

	respondJSON(w, http.StatusOK, map[string]any{
		"start":         start.String(),
		"end":           end.String(),
		"income_cents":  summary.Income.Cents,
		"expense_cents": summary.Expenses.Cents,
		"savings_cents": summary.Savings.Cents,
		"savings_rate":  summary.SavingsRate,
	})
}

// handleAPISpending serves the expense-by-category aggregation for charts.
func (s *Server) handleAPISpending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start, end, _ := dateRange(r)

	spending, err := s.store.SpendingByCategory(ctx, start, end)
	if err != nil {
		s.logger.ErrorContext(ctx, "Spending query failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load spending"})
		return
	}

	type item struct {
		Category   string `json:"category"`
		TotalCents int64  `json:"total_cents"`
	}
	items := make([]item, 0, len(spending))
	for _, cs := range spending {
		items = append(items, item{Category: cs.Category, TotalCents: cs.Total.Cents})
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"start": start.String(),
		"end":   end.String(),
		"items": items,
	})
}
