package http

import (
	"log/slog"
	"net/http"
	"time"

	"budget/internal/core"
)

// Read endpoints below recompute their aggregates from the full transaction
// list on every call; only the list itself is cached, and every write
// invalidates it.

const chartMonths = 6

func (s *Server) loadTransactions(r *http.Request) ([]core.Transaction, error) {
	if cached, found := s.listCache.Get(listCacheKey); found {
		slog.DebugContext(r.Context(), "Transaction list cache hit", "count", len(cached))
		result := make([]core.Transaction, len(cached))
		copy(result, cached)
		return result, nil
	}

	transactions, err := s.store.List(r.Context())
	if err != nil {
		return nil, err
	}
	s.listCache.Set(listCacheKey, transactions)
	return transactions, nil
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.loadTransactions(r)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load transactions for summary", "error", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to compute summary", err)
		return
	}

	totals := core.ComputeTotals(transactions)
	writeJSON(w, http.StatusOK, map[string]float64{
		"totalIncome":   totals.Income.Euros(),
		"totalExpenses": totals.Expenses.Euros(),
		"balance":       totals.Balance.Euros(),
	})
}

type chartBucket struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.loadTransactions(r)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load transactions for chart", "error", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to compute chart data", err)
		return
	}

	series := core.MonthlySeries(transactions, chartMonths)
	buckets := make([]chartBucket, 0, len(series))
	for _, b := range series {
		buckets = append(buckets, chartBucket{
			Month:    b.Month,
			Income:   b.Income.Euros(),
			Expenses: b.Expenses.Euros(),
		})
	}
	writeJSON(w, http.StatusOK, buckets)
}

type calendarDayResponse struct {
	Date         string                `json:"date"`
	Total        float64               `json:"total"`
	Transactions []transactionResponse `json:"transactions"`
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.loadTransactions(r)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load transactions for calendar", "error", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to compute calendar data", err)
		return
	}

	now := time.Now()
	days := core.CalendarMonth(transactions, now)
	cells := make([]calendarDayResponse, 0, len(days))
	for _, d := range days {
		cells = append(cells, calendarDayResponse{
			Date:         d.Date,
			Total:        d.Total.Euros(),
			Transactions: newTransactionResponses(d.Transactions),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"month": now.Format("2006-01"),
		"days":  cells,
	})
}
