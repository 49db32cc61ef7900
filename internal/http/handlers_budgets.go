package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"budgetplanner/internal/core"
)

func (s *Server) handleBudgets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	month, year := monthYear(r)

	budgets, err := s.store.BudgetsForMonth(ctx, month, year)
	if err != nil {
		s.logger.ErrorContext(ctx, "Budgets query failed", "error", err)
		http.Error(w, "failed to load budgets", http.StatusInternalServerError)
		return
	}

	// Budgets only make sense for expense categories.
	cats, err := s.store.Categories(ctx, core.Expense)
	if err != nil {
		s.logger.ErrorContext(ctx, "Categories query failed", "error", err)
		http.Error(w, "failed to load categories", http.StatusInternalServerError)
		return
	}

	type row struct {
		Category string
		Amount   string
	}
	rows := make([]row, 0, len(budgets))
	for _, b := range budgets {
		rows = append(rows, row{Category: b.Category, Amount: b.Amount.String()})
	}

	msg, errMsg := flash(r)
	s.render(w, r, "budgets.html", struct {
		Active     string
		Msg, Err   string
		Month      int
		Year       int
		Budgets    []row
		Categories []core.Category
	}{
		Active:     "budgets",
		Msg:        msg,
		Err:        errMsg,
		Month:      month,
		Year:       year,
		Budgets:    rows,
		Categories: cats,
	})
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		redirectFlash(w, r, "/budgets", "", "invalid form data")
		return
	}

	cents, err := core.ParseDecimalToCents(r.Form.Get("amount"))
	if err != nil {
		redirectFlash(w, r, "/budgets", "", "invalid amount")
		return
	}
	month, err := strconv.Atoi(r.Form.Get("month"))
	if err != nil {
		redirectFlash(w, r, "/budgets", "", "invalid month")
		return
	}
	year, err := strconv.Atoi(r.Form.Get("year"))
	if err != nil {
		redirectFlash(w, r, "/budgets", "", "invalid year")
		return
	}

	b := core.Budget{
		Category: sanitizeInput(r.Form.Get("category")),
		Amount:   core.MoneyFromCents(cents),
		Month:    month,
		Year:     year,
	}
	if err := b.Validate(); err != nil {
		redirectFlash(w, r, "/budgets", "", err.Error())
		return
	}

	if err := s.store.SetBudget(ctx, b); err != nil {
		s.logger.ErrorContext(ctx, "Set budget failed", "error", err)
		http.Error(w, "failed to set budget", http.StatusInternalServerError)
		return
	}

	back := fmt.Sprintf("/budgets?month=%d&year=%d", month, year)
	redirectFlash(w, r, back, "budget for "+b.Category+" saved", "")
}

// handleAPIBudget serves a single budget lookup. An unset budget is a 404
// with an explicit body, not a server error.
func (s *Server) handleAPIBudget(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	month, year := monthYear(r)
	category := sanitizeInput(r.URL.Query().Get("category"))
	if category == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "category is required"})
		return
	}

	b, err := s.store.Budget(ctx, category, month, year)
	if errors.Is(err, core.ErrBudgetNotFound) {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "budget not found"})
		return
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Budget query failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load budget"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"category":     b.Category,
		"amount_cents": b.Amount.Cents,
		"month":        b.Month,
		"year":         b.Year,
	})
}
