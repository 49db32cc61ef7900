package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"budgetplanner/internal/core"
)

// Period names accepted by the date-range filter.
const (
	periodThisMonth = "this-month"
	periodLastMonth = "last-month"
	periodThisYear  = "this-year"
	periodCustom    = "custom"
)

// dateRange resolves the period/start/end query parameters into an inclusive
// date range. Unknown or missing values fall back to the current month.
func dateRange(r *http.Request) (start, end core.Date, period string) {
	today := core.Today()
	period = r.URL.Query().Get("period")

	switch period {
	case periodLastMonth:
		month, year := int(today.Time.Month())-1, today.Year()
		if month < 1 {
			month, year = 12, year-1
		}
		start, end = core.MonthRange(year, month)
	case periodThisYear:
		start, end = core.YearRange(today.Year())
	case periodCustom:
		var err1, err2 error
		start, err1 = core.ParseDate(r.URL.Query().Get("start"))
		end, err2 = core.ParseDate(r.URL.Query().Get("end"))
		if err1 != nil || err2 != nil {
			start, end = core.MonthRange(today.Year(), int(today.Time.Month()))
			period = periodThisMonth
		}
	default:
		start, end = core.MonthRange(today.Year(), int(today.Time.Month()))
		period = periodThisMonth
	}
	return start, end, period
}

// monthYear resolves month/year query parameters, defaulting to the current
// month.
func monthYear(r *http.Request) (month, year int) {
	today := core.Today()
	month, year = int(today.Time.Month()), today.Year()
	if v := r.URL.Query().Get("month"); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}
	if v := r.URL.Query().Get("year"); v != "" {
		if y, err := strconv.Atoi(v); err == nil && y >= 1 {
			year = y
		}
	}
	return month, year
}

// sanitizeInput trims whitespace and strips control characters.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// render executes a page template inside the shared layout.
func (s *Server) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	t, ok := s.pages[page]
	if !ok {
		s.logger.ErrorContext(r.Context(), "Unknown page template", "template", page)
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Template execution failed", "template", page, "error", err)
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// redirectFlash redirects to path with a one-shot message in the query
// string. Messages are rendered by the layout, never stored.
func redirectFlash(w http.ResponseWriter, r *http.Request, path, msg, errMsg string) {
	q := url.Values{}
	if msg != "" {
		q.Set("msg", msg)
	}
	if errMsg != "" {
		q.Set("err", errMsg)
	}
	target := path
	if encoded := q.Encode(); encoded != "" {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		target = path + sep + encoded
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// flash extracts the one-shot messages from the query string.
func flash(r *http.Request) (msg, errMsg string) {
	return r.URL.Query().Get("msg"), r.URL.Query().Get("err")
}
