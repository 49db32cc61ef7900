package http

import (
	"net/http"
	"strconv"

	"budgetplanner/internal/core"
	"budgetplanner/internal/storage"

	"github.com/go-chi/chi/v5"
)

type transactionRow struct {
	ID          int64
	Amount      string
	Category    string
	Description string
	Date        string
	Type        string
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start, end, period := dateRange(r)

	filter := storage.TransactionFilter{StartDate: start, EndDate: end}
	if v := r.URL.Query().Get("type"); v == string(core.Income) || v == string(core.Expense) {
		filter.Type = core.TransactionType(v)
	}
	if v := sanitizeInput(r.URL.Query().Get("category")); v != "" {
		filter.Category = v
	}

	txs, err := s.store.Transactions(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "Transactions query failed", "error", err)
		http.Error(w, "failed to load transactions", http.StatusInternalServerError)
		return
	}

	cats, err := s.store.Categories(ctx, "")
	if err != nil {
		s.logger.ErrorContext(ctx, "Categories query failed", "error", err)
		http.Error(w, "failed to load categories", http.StatusInternalServerError)
		return
	}

	rows := make([]transactionRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, transactionRow{
			ID:          tx.ID,
			Amount:      tx.Amount.String(),
			Category:    tx.Category,
			Description: tx.Description,
			Date:        tx.Date.String(),
			Type:        string(tx.Type),
		})
	}

	msg, errMsg := flash(r)
	s.render(w, r, "transactions.html", struct {
		Active       string
		Msg, Err     string
		Period       string
		Start, End   string
		Type         string
		Category     string
		Transactions []transactionRow
		Categories   []core.Category
		Today        string
	}{
		Active:       "transactions",
		Msg:          msg,
		Err:          errMsg,
		Period:       period,
		Start:        start.String(),
		End:          end.String(),
		Type:         string(filter.Type),
		Category:     filter.Category,
		Transactions: rows,
		Categories:   cats,
		Today:        core.Today().String(),
	})
}

func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		redirectFlash(w, r, "/transactions", "", "invalid form data")
		return
	}

	cents, err := core.ParseDecimalToCents(r.Form.Get("amount"))
	if err != nil {
		redirectFlash(w, r, "/transactions", "", "invalid amount")
		return
	}
	date, err := core.ParseDate(r.Form.Get("date"))
	if err != nil {
		redirectFlash(w, r, "/transactions", "", "invalid date")
		return
	}

	tx := core.Transaction{
		Amount:      core.MoneyFromCents(cents),
		Category:    sanitizeInput(r.Form.Get("category")),
		Description: sanitizeInput(r.Form.Get("description")),
		Date:        date,
		Type:        core.TransactionType(r.Form.Get("type")),
	}
	if err := tx.Validate(); err != nil {
		redirectFlash(w, r, "/transactions", "", err.Error())
		return
	}

	id, err := s.store.AddTransaction(ctx, tx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Add transaction failed", "error", err)
		http.Error(w, "failed to save transaction", http.StatusInternalServerError)
		return
	}

	redirectFlash(w, r, "/transactions", "transaction #"+strconv.FormatInt(id, 10)+" recorded", "")
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		redirectFlash(w, r, "/transactions", "", "invalid transaction id")
		return
	}

	deleted, err := s.store.DeleteTransaction(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Delete transaction failed", "id", id, "error", err)
		http.Error(w, "failed to delete transaction", http.StatusInternalServerError)
		return
	}
	if !deleted {
		redirectFlash(w, r, "/transactions", "", "transaction not found")
		return
	}
	redirectFlash(w, r, "/transactions", "transaction deleted", "")
}
