// Package http is the presentation layer: server-rendered form pages and a
// few JSON endpoints for charts. It talks to the store only through its
// public operations.
package http

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"budgetplanner/internal/log"
	"budgetplanner/internal/storage"
	appweb "budgetplanner/web"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	http.Server
	store  *storage.Store
	logger *log.Logger
	pages  map[string]*template.Template
}

// pageNames are the templates rendered inside layout.html.
var pageNames = []string{
	"dashboard.html",
	"transactions.html",
	"budgets.html",
	"settings.html",
}

// NewServer configures routes and templates, returning a ready-to-run server.
func NewServer(addr string, store *storage.Store, logger *log.Logger) (*Server, error) {
	s := &Server{
		store:  store,
		logger: logger.WithComponent(log.ComponentHTTP),
	}

	pages, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	s.pages = pages

	r := chi.NewRouter()
	r.Use(log.Middleware(s.logger))
	r.Use(s.requestID)
	r.Use(s.requestLogger)
	r.Use(securityHeaders)

	r.Get("/healthz", handleHealth)

	// Static assets from the embedded FS
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		r.Get("/static/*", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
			static.ServeHTTP(w, req)
		})
	} else {
		logger.Warn("Failed to mount embedded static FS", "error", err)
	}

	r.Get("/", s.handleDashboard)

	r.Get("/transactions", s.handleTransactions)
	r.Post("/transactions", s.handleAddTransaction)
	r.Post("/transactions/{id}/delete", s.handleDeleteTransaction)

	r.Get("/budgets", s.handleBudgets)
	r.Post("/budgets", s.handleSetBudget)

	r.Get("/settings", s.handleSettings)
	r.Post("/categories", s.handleAddCategory)
	r.Post("/settings/clear", s.handleClearData)

	r.Get("/export/csv", s.handleExportCSV)
	r.Get("/export/xlsx", s.handleExportXLSX)

	r.Get("/api/summary", s.handleAPISummary)
	r.Get("/api/spending", s.handleAPISpending)
	r.Get("/api/budget", s.handleAPIBudget)

	s.Server = http.Server{
		Addr:           addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	return s, nil
}

// parsePages builds one template set per page so each can define its own
// content block inside the shared layout.
func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(appweb.TemplatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

// Shutdown delegates to the underlying HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.Server.Shutdown(ctx)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
