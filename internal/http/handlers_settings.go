package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"budgetplanner/internal/core"
	"budgetplanner/internal/export"
	"budgetplanner/internal/storage"
)

const defaultIcon = "📌"

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cats, err := s.store.Categories(ctx, "")
	if err != nil {
		s.logger.ErrorContext(ctx, "Categories query failed", "error", err)
		http.Error(w, "failed to load categories", http.StatusInternalServerError)
		return
	}

	msg, errMsg := flash(r)
	s.render(w, r, "settings.html", struct {
		Active     string
		Msg, Err   string
		Categories []core.Category
	}{
		Active:     "settings",
		Msg:        msg,
		Err:        errMsg,
		Categories: cats,
	})
}

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		redirectFlash(w, r, "/settings", "", "invalid form data")
		return
	}

	c := core.Category{
		Name: sanitizeInput(r.Form.Get("name")),
		Type: core.TransactionType(r.Form.Get("type")),
		Icon: sanitizeInput(r.Form.Get("icon")),
	}
	if c.Icon == "" {
		c.Icon = defaultIcon
	}
	if err := c.Validate(); err != nil {
		redirectFlash(w, r, "/settings", "", err.Error())
		return
	}

	err := s.store.AddCategory(ctx, c)
	if errors.Is(err, core.ErrDuplicateCategory) {
		redirectFlash(w, r, "/settings", "", "category "+c.Name+" already exists")
		return
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Add category failed", "error", err)
		http.Error(w, "failed to add category", http.StatusInternalServerError)
		return
	}

	redirectFlash(w, r, "/settings", "category "+c.Name+" added", "")
}

func (s *Server) handleClearData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		redirectFlash(w, r, "/settings", "", "invalid form data")
		return
	}
	// Irreversible; the form requires typed confirmation.
	if r.Form.Get("confirm") != "DELETE" {
		redirectFlash(w, r, "/settings", "", "type DELETE to confirm clearing all data")
		return
	}

	if err := s.store.ClearAllData(ctx); err != nil {
		s.logger.ErrorContext(ctx, "Clear data failed", "error", err)
		http.Error(w, "failed to clear data", http.StatusInternalServerError)
		return
	}

	redirectFlash(w, r, "/settings", "all transactions and budgets cleared", "")
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	txs, err := s.store.Transactions(ctx, storage.TransactionFilter{})
	if err != nil {
		s.logger.ErrorContext(ctx, "Export query failed", "error", err)
		http.Error(w, "failed to load transactions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "transactions_"+time.Now().Format("20060102")+".csv"))

	if err := export.WriteCSV(w, txs); err != nil {
		s.logger.ErrorContext(ctx, "CSV export failed", "error", err)
	}
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	txs, err := s.store.Transactions(ctx, storage.TransactionFilter{})
	if err != nil {
		s.logger.ErrorContext(ctx, "Export query failed", "error", err)
		http.Error(w, "failed to load transactions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "transactions_"+time.Now().Format("20060102")+".xlsx"))

	if err := export.WriteXLSX(w, txs); err != nil {
		s.logger.ErrorContext(ctx, "XLSX export failed", "error", err)
	}
}
